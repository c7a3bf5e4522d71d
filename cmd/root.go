package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/attafarid/studyai/internal/gate"
	"github.com/attafarid/studyai/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studyai",
	Short: "AI exam paper generator",
	Long: "Study.AI — generates printable exam papers from your study material " +
		"(notes, slides, documents) using an LLM, with in-place editing and " +
		"PDF, JSON, and text export.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYAI_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STUDYAI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the telemetry/settings database for this invocation.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// checkGate prompts for the access code when the gate is enabled.
func checkGate() error {
	if !gate.Enabled() {
		return nil
	}

	fmt.Print("Access code: ")
	reader := bufio.NewReader(os.Stdin)
	code, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read access code: %w", err)
	}
	if !gate.Verify(code) {
		return fmt.Errorf("access denied: invalid code")
	}
	return nil
}
