package lintreport

import (
	"fmt"
	"os"
	"strings"
)

// DefaultInputPath is where CI writes the lint findings.
const DefaultInputPath = "lint_output.txt"

// ReadFindings reads the lint output file and trims surrounding
// whitespace. An empty result means there is nothing to report; that is
// the designed no-op path, not an error.
func ReadFindings(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read lint output %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
