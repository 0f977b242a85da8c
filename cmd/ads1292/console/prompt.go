package console

import (
	"strings"

	"github.com/chzyer/readline"
)

// YesOrNo asks a yes/no question on the terminal. Empty or unrecognized
// input counts as no; register writes should never happen by accident.
func YesOrNo(question string) (bool, error) {
	answer, err := Prompt(question+" [y/N]: ", "n", "y")
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

// Prompt reads one line from the terminal and lowercases it. With
// constraints, input not matching any of them falls back to the first one.
func Prompt(question string, constraints ...string) (string, error) {
	rl, err := readline.New(question)
	if err != nil {
		return "", err
	}
	defer func() { _ = rl.Close() }()
	response, err := rl.Readline()
	if err != nil {
		return "", err
	}
	normalized := strings.ToLower(strings.TrimSpace(response))
	if len(constraints) == 0 {
		return normalized, nil
	}
	for _, c := range constraints {
		if normalized == c {
			return normalized, nil
		}
	}
	return constraints[0], nil
}
