package crypto

import (
	"strings"
	"testing"
)

// seqSource replays fixed indexes, wrapping around.
type seqSource struct {
	idx []int
	pos int
}

func (s *seqSource) IntN(n int) int {
	v := s.idx[s.pos%len(s.idx)] % n
	s.pos++
	return v
}

func mustValidate(t *testing.T, req Request) Accepted {
	t.Helper()
	a, err := Validate(req)
	if err != nil {
		t.Fatalf("Validate(%+v) unexpected error: %v", req, err)
	}
	return a
}

func TestAlphabet(t *testing.T) {
	tests := []struct {
		name    string
		classes Classes
		want    string
	}{
		{"none", Classes{}, ""},
		{"lowercase", Classes{Lowercase: true}, lowercaseChars},
		{"uppercase and numbers", Classes{Uppercase: true, Numbers: true}, uppercaseChars + numberChars},
		{"symbols and numbers", Classes{Symbols: true, Numbers: true}, symbolChars + numberChars},
		{
			name:    "all classes in fixed order",
			classes: Classes{Lowercase: true, Uppercase: true, Numbers: true, Symbols: true},
			want:    "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ~!@#$%^&*()_+=-{}|1234567890",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Alphabet(tt.classes); got != tt.want {
				t.Errorf("Alphabet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassSetsMatchAlphabetOrder(t *testing.T) {
	var joined strings.Builder
	for _, cs := range ClassSets() {
		joined.WriteString(cs.Chars)
	}
	all := Alphabet(Classes{Lowercase: true, Uppercase: true, Numbers: true, Symbols: true})
	if joined.String() != all {
		t.Errorf("ClassSets() joined = %q, want %q", joined.String(), all)
	}
}

func TestGenerateLengthAndCharset(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		charset string
	}{
		{
			name:    "lowercase only, length 6",
			req:     Request{Classes: Classes{Lowercase: true}, Length: 6},
			charset: "abcdefghijklmnopqrstuvwxyz",
		},
		{
			name:    "uppercase and numbers, length 8",
			req:     Request{Classes: Classes{Uppercase: true, Numbers: true}, Length: 8},
			charset: "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890",
		},
		{
			name:    "symbols only, max length",
			req:     Request{Classes: Classes{Symbols: true}, Length: MaxLength},
			charset: symbolChars,
		},
		{
			name:    "all classes",
			req:     Request{Classes: Classes{Lowercase: true, Uppercase: true, Numbers: true, Symbols: true}, Length: 20},
			charset: lowercaseChars + uppercaseChars + symbolChars + numberChars,
		},
	}

	sources := map[string]Source{
		"math":   MathSource{},
		"crypto": CryptoSource{},
		"seeded": NewSeededSource(42),
	}

	for _, tt := range tests {
		for srcName, src := range sources {
			t.Run(tt.name+"/"+srcName, func(t *testing.T) {
				a := mustValidate(t, tt.req)
				for i := 0; i < 50; i++ {
					password := Generate(a, src)
					if len(password) != tt.req.Length {
						t.Fatalf("Generate() length = %d, want %d", len(password), tt.req.Length)
					}
					for _, ch := range password {
						if !strings.ContainsRune(tt.charset, ch) {
							t.Fatalf("password %q contains unexpected character %q (not in %q)", password, string(ch), tt.charset)
						}
					}
				}
			})
		}
	}
}

func TestGenerateIndexesIntoAlphabet(t *testing.T) {
	a := mustValidate(t, Request{Classes: Classes{Uppercase: true, Numbers: true}, Length: 6})

	// Alphabet is "A..Z1234567890": index 0 -> 'A', 25 -> 'Z', 26 -> '1', 35 -> '0'.
	src := &seqSource{idx: []int{0, 25, 26, 35, 1, 27}}
	if got, want := Generate(a, src), "AZ10B2"; got != want {
		t.Errorf("Generate() = %q, want %q", got, want)
	}
}

func TestGenerateAllowsRepeats(t *testing.T) {
	a := mustValidate(t, Request{Classes: Classes{Lowercase: true}, Length: 6})
	if got := Generate(a, &seqSource{idx: []int{3}}); got != "dddddd" {
		t.Errorf("Generate() = %q, want %q", got, "dddddd")
	}
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	a := mustValidate(t, Request{Classes: Classes{Lowercase: true, Symbols: true}, Length: 16})

	first := Generate(a, NewSeededSource(7))
	second := Generate(a, NewSeededSource(7))
	if first != second {
		t.Errorf("seeded Generate() = %q and %q, want identical", first, second)
	}
}

func TestGenerateCoversAlphabet(t *testing.T) {
	a := mustValidate(t, Request{Classes: Classes{Numbers: true}, Length: MaxLength})

	seen := make(map[rune]bool)
	for i := 0; i < 100; i++ {
		for _, ch := range Generate(a, MathSource{}) {
			seen[ch] = true
		}
	}
	if len(seen) != len(numberChars) {
		t.Errorf("saw %d distinct digits over 3000 draws, want %d", len(seen), len(numberChars))
	}
}
