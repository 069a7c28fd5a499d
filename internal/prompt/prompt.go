package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_]+)\}`)

// TemplateError reports a placeholder with no supplied value. With the fixed
// templates in this package it indicates a programming error in the caller.
type TemplateError struct {
	Template string
	Variable string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("prompt template %q: no value for placeholder {%s}", e.Template, e.Variable)
}

// Render substitutes {name} placeholders in the template with the supplied
// values. Substitution is literal; values are inserted as-is, unescaped.
// Placeholders are located in the template text before substitution so that
// braces inside substituted values are never mistaken for placeholders.
func Render(tmpl Template, vars map[string]string) (string, error) {
	text := tmpl.Text
	for _, m := range placeholderPattern.FindAllStringSubmatch(tmpl.Text, -1) {
		value, ok := vars[m[1]]
		if !ok {
			return "", &TemplateError{Template: tmpl.Name, Variable: m[1]}
		}
		text = strings.ReplaceAll(text, m[0], value)
	}

	return text, nil
}
