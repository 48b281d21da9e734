package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cmardones/rosterbase/internal/validate"
)

// readLine prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func readLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question. Both "y" and "s" count as yes, matching
// the Spanish-keyboard habit of the datasets this tool manages.
func confirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	answer, err := readLine(reader, prompt+" (y/n): ", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "s", "si", "sí":
		return true, nil
	default:
		return false, nil
	}
}

// promptValidated keeps asking until the value satisfies the rule, then
// returns its canonical form. Optional rules accept a blank answer. The
// rejection reason is printed between attempts.
func promptValidated(reader *bufio.Reader, w io.Writer, label string, v validate.Validator) (string, error) {
	prompt := label + ": "
	if v.Optional {
		prompt = label + " (optional): "
	}
	for {
		value, err := readLine(reader, prompt, w)
		if err != nil {
			return "", err
		}
		if v.Accepts(value) {
			return v.Canonical(value), nil
		}
		if _, err := fmt.Fprintln(w, v.Reason+", try again."); err != nil {
			return "", err
		}
	}
}
