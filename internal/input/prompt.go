package input

import (
	"fmt"
	"io"
	"strings"
)

// Answer is the normalized result of a yes/no prompt.
type Answer string

// Normalized yes/no answers.
const (
	Yes Answer = "yes"
	No  Answer = "no"
)

// Accepted spellings for yes/no answers, matching the installer's
// historical behavior.
var validAnswers = map[string]Answer{
	"yes": Yes,
	"y":   Yes,
	"ye":  Yes,
	"no":  No,
	"n":   No,
}

// AskYesNo asks the user a yes/no question and returns the normalized answer.
//
// def is the presumed answer when the user just hits Enter. It must be
// Yes, No, or empty, where empty means an explicit answer is required.
// Invalid input re-prompts until a valid answer (or EOF) is seen.
func AskYesNo(r Reader, w io.Writer, question string, def Answer) (Answer, error) {
	var prompt string
	switch def {
	case "":
		prompt = " [y/n] "
	case Yes:
		prompt = " [Y/n] "
	case No:
		prompt = " [y/N] "
	default:
		return "", fmt.Errorf("invalid default answer: %q", def)
	}

	for {
		_, _ = fmt.Fprint(w, question+prompt)
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		choice := strings.ToLower(strings.TrimSpace(line))

		if choice == "" && def != "" {
			return def, nil
		}
		if answer, ok := validAnswers[choice]; ok {
			return answer, nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
		_, _ = fmt.Fprintln(w, "Please respond with 'yes' or 'no' (or 'y' or 'n').")
	}
}

// AskInstallDir prompts for an install directory, showing the default.
// An empty response selects the default.
func AskInstallDir(r Reader, w io.Writer, product, def string) (string, error) {
	_, _ = fmt.Fprintf(w, `Enter directory in which to install %s. Leave blank and
press 'Enter' to use the default [%s].
Install directory: `, product, def)

	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	dir := strings.TrimSpace(line)
	if dir == "" {
		return def, nil
	}
	return dir, nil
}
