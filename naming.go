package typename

import (
	"strings"
	"unicode"
)

// Strategy renders an extracted name into a serialization-friendly key.
type Strategy interface {
	Render(n *Name) string
}

// Exact renders the name unchanged, exactly as extracted.
var Exact Strategy = exact{}

// Kebab converts the undecorated base name from PascalCase to
// dot-separated lowercase.
// Example: OrderCreated → "order.created"
var Kebab Strategy = kebab{}

// Snake converts the undecorated base name from PascalCase to
// underscore-separated lowercase.
// Example: OrderCreated → "order_created"
var Snake Strategy = snake{}

type exact struct{}

func (exact) Render(n *Name) string {
	return n.String()
}

type kebab struct{}

func (kebab) Render(n *Name) string {
	return splitPascalCase(n.Base(), ".")
}

type snake struct{}

func (snake) Render(n *Name) string {
	return splitPascalCase(n.Base(), "_")
}

// splitPascalCase splits a PascalCase string into lowercase words joined by sep.
func splitPascalCase(s string, sep string) string {
	if s == "" {
		return ""
	}

	var words []string
	var current strings.Builder

	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, strings.ToLower(current.String()))
	}

	return strings.Join(words, sep)
}
