package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdin and Stdout are where prompts read answers from and write questions to.
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
)

func readLine() (string, bool) {
	response, err := bufio.NewReader(Stdin).ReadString('\n')
	if err != nil && response == "" {
		return "", false
	}
	return strings.TrimSpace(response), true
}

func PromptString(prompt string, def string) string {
	fmt.Fprintf(Stdout, "%s (%s): ", prompt, def)

	response, ok := readLine()
	if !ok || response == "" {
		return def
	}

	return response
}

func PromptYN(prompt string, def bool) bool {
	if def {
		fmt.Fprintf(Stdout, "%s (Y/n): ", prompt)
	} else {
		fmt.Fprintf(Stdout, "%s (y/N): ", prompt)
	}

	response, ok := readLine()
	if !ok || response == "" {
		return def
	}

	return strings.ToLower(response) == "y"
}
