package crypto

import "strings"

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	symbolChars    = "~!@#$%^&*()_+=-{}|"
	numberChars    = "1234567890"
)

// Classes selects which character classes contribute to the alphabet.
type Classes struct {
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultClasses enables lowercase only.
func DefaultClasses() Classes {
	return Classes{Lowercase: true}
}

// Any reports whether at least one class is enabled.
func (c Classes) Any() bool {
	return c.Lowercase || c.Uppercase || c.Numbers || c.Symbols
}

// Request describes a password to generate.
type Request struct {
	Classes Classes
	Length  int
}

// ClassSet is a named character class and its literal characters.
type ClassSet struct {
	Name  string
	Chars string
}

// ClassSets returns the character classes in alphabet order.
func ClassSets() []ClassSet {
	return []ClassSet{
		{Name: "lowercase", Chars: lowercaseChars},
		{Name: "uppercase", Chars: uppercaseChars},
		{Name: "symbols", Chars: symbolChars},
		{Name: "numbers", Chars: numberChars},
	}
}

// Alphabet concatenates the enabled classes in the order
// lowercase, uppercase, symbols, numbers.
func Alphabet(c Classes) string {
	var sb strings.Builder
	if c.Lowercase {
		sb.WriteString(lowercaseChars)
	}
	if c.Uppercase {
		sb.WriteString(uppercaseChars)
	}
	if c.Symbols {
		sb.WriteString(symbolChars)
	}
	if c.Numbers {
		sb.WriteString(numberChars)
	}
	return sb.String()
}

// Generate builds a password of the accepted length by drawing each
// character independently and uniformly from the alphabet.
// There is no guarantee that every enabled class appears in the result.
func Generate(a Accepted, src Source) string {
	alphabet := Alphabet(a.req.Classes)

	var sb strings.Builder
	sb.Grow(a.req.Length)
	for i := 0; i < a.req.Length; i++ {
		sb.WriteByte(alphabet[src.IntN(len(alphabet))])
	}
	return sb.String()
}
