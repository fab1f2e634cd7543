// Package langdetect names the language of a fenced code block, either from
// its info string or, when the fence carries none, from the code itself.
// It is backed by go-enry.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Text is returned when no language can be determined.
const Text = "text"

// hint is a cheap, highly indicative pattern checked before the classifier.
type hint struct {
	lang  string
	match func(code, trimmed []byte) bool
}

//nolint:gochecknoglobals // Read-only lookup table.
var hints = []hint{
	{"go", func(_, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("package "))
	}},
	{"python", func(code, _ []byte) bool {
		return bytes.Contains(code, []byte("__main__")) ||
			(bytes.Contains(code, []byte("def ")) && bytes.Contains(code, []byte("):")))
	}},
	{"html", func(_, trimmed []byte) bool {
		lower := bytes.ToLower(trimmed)
		return bytes.HasPrefix(lower, []byte("<!doctype html")) || bytes.HasPrefix(lower, []byte("<html"))
	}},
	{"json", func(_, trimmed []byte) bool {
		return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
			bytes.Contains(trimmed, []byte(`":`))
	}},
	{"dockerfile", func(_, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("FROM ")) && bytes.Contains(trimmed, []byte("\nRUN "))
	}},
	{"sql", func(_, trimmed []byte) bool {
		upper := bytes.ToUpper(trimmed)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if bytes.HasPrefix(upper, []byte(kw)) {
				return true
			}
		}
		return false
	}},
	{"rust", func(code, _ []byte) bool {
		return bytes.Contains(code, []byte("fn main()")) || bytes.Contains(code, []byte("println!"))
	}},
}

// classifierCandidates restricts go-enry's classifier to languages commonly
// found in Markdown documentation.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect guesses the language of code. It reports false, with Text, when
// nothing matches with confidence.
func Detect(code []byte) (string, bool) {
	trimmed := bytes.TrimSpace(code)
	if len(trimmed) == 0 {
		return Text, false
	}

	if lang, safe := enry.GetLanguageByShebang(code); safe {
		return normalize(lang), true
	}

	for _, h := range hints {
		if h.match(code, trimmed) {
			return h.lang, true
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(code, classifierCandidates); safe && lang != "" {
		return normalize(lang), true
	}

	return Text, false
}

// FromInfo derives a language tag from a fence info string such as
// "golang title=main.go". Known aliases are resolved through go-enry;
// unknown words are returned lowercased. An empty info yields "".
func FromInfo(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}

	word := strings.ToLower(fields[0])
	if lang, ok := enry.GetLanguageByAlias(word); ok {
		return normalize(lang)
	}
	return word
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
