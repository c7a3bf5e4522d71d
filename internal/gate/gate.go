// Package gate implements the optional access code check shown before
// any generation runs. It is a soft gate for shared machines, not a
// security boundary.
package gate

import (
	"os"
	"strings"
)

const accessCode = "studyai"

// Enabled reports whether the access gate is turned on. It is off by
// default; set STUDYAI_GATE=1 to require the code.
func Enabled() bool {
	return os.Getenv("STUDYAI_GATE") == "1"
}

// Verify reports whether code matches the access code. Surrounding
// whitespace and letter case are ignored.
func Verify(code string) bool {
	return strings.EqualFold(strings.TrimSpace(code), accessCode)
}
