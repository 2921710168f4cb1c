package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withInput(t *testing.T, in string) *strings.Builder {
	stdin, stdout := Stdin, Stdout
	t.Cleanup(func() { Stdin, Stdout = stdin, stdout })
	out := &strings.Builder{}
	Stdin = strings.NewReader(in)
	Stdout = out
	return out
}

func TestPromptYN(t *testing.T) {
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"y\n", false, true},
		{"Y\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"", false, false},
		{"yes\n", true, false},
	}
	for _, tt := range tests {
		withInput(t, tt.in)
		assert.Equal(t, tt.want, PromptYN("Overwrite?", tt.def), "input %q", tt.in)
	}
}

func TestPromptYNWritesQuestion(t *testing.T) {
	out := withInput(t, "\n")
	PromptYN("Overwrite?", false)
	assert.Equal(t, "Overwrite? (y/N): ", out.String())
}

func TestPromptString(t *testing.T) {
	out := withInput(t, "  demo \n")
	assert.Equal(t, "demo", PromptString("Project name", "NewProject"))
	assert.Equal(t, "Project name (NewProject): ", out.String())

	withInput(t, "")
	assert.Equal(t, "NewProject", PromptString("Project name", "NewProject"))
}
