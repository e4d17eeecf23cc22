package form

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

func newTestForm() (*Form, *MemoryClipboard) {
	cb := &MemoryClipboard{}
	return New(crypto.NewSeededSource(5), cb), cb
}

func TestNewStartsReset(t *testing.T) {
	f, _ := newTestForm()

	want := crypto.Classes{Lowercase: true}
	if f.Classes != want {
		t.Errorf("Classes = %+v, want %+v", f.Classes, want)
	}
	if f.Length != 0 || f.Password() != "" || f.Error() != "" {
		t.Errorf("unexpected initial state: length=%d password=%q error=%q", f.Length, f.Password(), f.Error())
	}
}

func TestSubmitAccepted(t *testing.T) {
	f, _ := newTestForm()
	f.Length = 6

	if err := f.Submit(); err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}
	if len(f.Password()) != 6 {
		t.Errorf("Password() length = %d, want 6", len(f.Password()))
	}
	for _, c := range f.Password() {
		if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyz", c) {
			t.Errorf("unexpected character %q", c)
		}
	}
	if f.Error() != "" {
		t.Errorf("Error() = %q, want empty", f.Error())
	}
}

func TestSubmitRejected(t *testing.T) {
	tests := []struct {
		name    string
		classes crypto.Classes
		length  int
		want    error
	}{
		{"too short", crypto.Classes{Lowercase: true}, 5, crypto.ErrTooShort},
		{"too long", crypto.Classes{Lowercase: true}, 31, crypto.ErrTooLong},
		{"no class", crypto.Classes{}, 10, crypto.ErrNoClassSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newTestForm()
			f.Length = 8
			if err := f.Submit(); err != nil {
				t.Fatalf("Submit() unexpected error: %v", err)
			}

			f.Classes = tt.classes
			f.Length = tt.length
			err := f.Submit()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Submit() error = %v, want %v", err, tt.want)
			}
			if f.Password() != "" {
				t.Errorf("Password() = %q, want cleared", f.Password())
			}
			if f.Length != 0 {
				t.Errorf("Length = %d, want 0", f.Length)
			}
			if f.Error() != tt.want.Error() {
				t.Errorf("Error() = %q, want %q", f.Error(), tt.want.Error())
			}
		})
	}
}

func TestSubmitClearsPreviousError(t *testing.T) {
	f, _ := newTestForm()
	_ = f.Submit()
	if f.Error() == "" {
		t.Fatal("expected an error for length 0")
	}

	f.Length = 10
	if err := f.Submit(); err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}
	if f.Error() != "" {
		t.Errorf("Error() = %q, want empty", f.Error())
	}
}

func TestReset(t *testing.T) {
	f, _ := newTestForm()
	f.Classes = crypto.Classes{Uppercase: true, Numbers: true, Symbols: true}
	f.Length = 12
	if err := f.Submit(); err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}

	f.Reset()

	want := crypto.Classes{Lowercase: true}
	if f.Classes != want {
		t.Errorf("Classes = %+v, want %+v", f.Classes, want)
	}
	if f.Length != 0 {
		t.Errorf("Length = %d, want 0", f.Length)
	}
	if f.Password() != "" || f.Error() != "" {
		t.Errorf("display not cleared: password=%q error=%q", f.Password(), f.Error())
	}
}

func TestCopy(t *testing.T) {
	f, cb := newTestForm()

	if err := f.Copy(); !errors.Is(err, ErrNothingToCopy) {
		t.Fatalf("Copy() error = %v, want %v", err, ErrNothingToCopy)
	}
	if cb.Text() != "" {
		t.Errorf("clipboard = %q, want untouched", cb.Text())
	}

	f.Length = 16
	if err := f.Submit(); err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}
	if err := f.Copy(); err != nil {
		t.Fatalf("Copy() unexpected error: %v", err)
	}
	if cb.Text() != f.Password() {
		t.Errorf("clipboard = %q, want %q", cb.Text(), f.Password())
	}
}

func TestTerminalClipboard(t *testing.T) {
	var buf bytes.Buffer
	if err := (TerminalClipboard{W: &buf}).SetText("abc"); err != nil {
		t.Fatalf("SetText() unexpected error: %v", err)
	}
	if got, want := buf.String(), "\x1b]52;c;YWJj\x07"; got != want {
		t.Errorf("SetText() wrote %q, want %q", got, want)
	}
}
