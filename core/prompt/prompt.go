package prompt

import (
	"fmt"
	"os"
	"strings"
)

// Marker separates a template's comment block from the prompt proper. When
// present, only the text after the first occurrence is used.
const Marker = "<commentblockmarker>###</commentblockmarker>"

// inputPlaceholder formats the positional placeholder for input i.
func inputPlaceholder(i int) string {
	return fmt.Sprintf("!<INPUT %d>!", i)
}

// Materialize loads the template at templatePath and substitutes each
// positional placeholder !<INPUT i>! with the i-th input. If the template
// contains [Marker], only the text after its first occurrence is kept. The
// result is trimmed of surrounding whitespace.
func Materialize(templatePath string, inputs ...string) (string, error) {
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt template %s: %w", templatePath, err)
	}
	return Fill(string(raw), inputs...), nil
}

// Fill performs placeholder substitution on an already-loaded template. It is
// the in-memory core of [Materialize], exposed for callers that store their
// templates somewhere other than the filesystem.
func Fill(template string, inputs ...string) string {
	for i, input := range inputs {
		template = strings.ReplaceAll(template, inputPlaceholder(i), input)
	}

	if _, after, found := strings.Cut(template, Marker); found {
		template = after
	}

	return strings.TrimSpace(template)
}
