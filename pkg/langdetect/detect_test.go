package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/inferus/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		expected string
		ok       bool
	}{
		{"shebang bash", "#!/bin/bash\necho hello\n", "bash", true},
		{"shebang python", "#!/usr/bin/env python3\nprint('hi')\n", "python", true},
		{"go package", "package main\n\nfunc main() {}\n", "go", true},
		{"python main guard", "if __name__ == '__main__':\n    run()\n", "python", true},
		{"json object", `{"key": "value"}`, "json", true},
		{"sql select", "select * from users;", "sql", true},
		{"rust main", "fn main() {\n    println!(\"hi\");\n}\n", "rust", true},
		{"empty", "", langdetect.Text, false},
		{"whitespace only", "  \n\t\n", langdetect.Text, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			lang, ok := langdetect.Detect([]byte(testCase.code))
			assert.Equal(t, testCase.expected, lang)
			assert.Equal(t, testCase.ok, ok)
		})
	}
}

func TestFromInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		info     string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"go", "go"},
		{"Go", "go"},
		{"golang title=main.go", "go"},
		{"sh", "bash"},
		{"mermaid", "mermaid"},
	}

	for _, testCase := range tests {
		t.Run(testCase.info, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, langdetect.FromInfo(testCase.info))
		})
	}
}
