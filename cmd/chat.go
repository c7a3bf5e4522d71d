package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/attafarid/studyai/internal/assistant"
	"github.com/attafarid/studyai/internal/llm"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the Study.AI assistant",
	Long: "Opens an interactive session with the Study.AI academic assistant. " +
		"Conversation history is kept for the session; type 'exit' to leave.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkGate(); err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()

		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return err
		}

		a := assistant.New(provider, assistant.DefaultConfig())

		fmt.Println("Study.AI assistant ready. Type 'exit' to leave.")

		var history []assistant.Turn
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}

			reply, err := a.Reply(ctx, line, history)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}

			fmt.Println(reply)
			fmt.Println()

			history = append(history,
				assistant.Turn{Role: assistant.RoleUser, Content: line},
				assistant.Turn{Role: assistant.RoleModel, Content: reply},
			)
		}

		return scanner.Err()
	},
}
