// Package form holds the state of the password screen: the selected
// classes, the requested length and whatever is currently displayed.
package form

import (
	"errors"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

var ErrNothingToCopy = errors.New("nothing to copy")

// Clipboard receives copied passwords.
type Clipboard interface {
	SetText(text string) error
}

// Form is not safe for concurrent use.
type Form struct {
	Classes crypto.Classes
	Length  int

	password string
	errMsg   string

	source    crypto.Source
	clipboard Clipboard
}

// New returns a form in its reset state.
func New(source crypto.Source, clipboard Clipboard) *Form {
	f := &Form{source: source, clipboard: clipboard}
	f.Reset()
	return f
}

// Password returns the displayed password, or "" if none.
func (f *Form) Password() string { return f.password }

// Error returns the displayed rejection message, or "" if none.
func (f *Form) Error() string { return f.errMsg }

// Submit validates the current settings and either displays a new password
// or, on rejection, clears the password and length and displays the reason.
func (f *Form) Submit() error {
	f.errMsg = ""

	accepted, err := crypto.Validate(crypto.Request{Classes: f.Classes, Length: f.Length})
	if err != nil {
		slog.Debug("settings rejected", "length", f.Length, "error", err)
		f.password = ""
		f.Length = 0
		f.errMsg = err.Error()
		return err
	}

	f.password = crypto.Generate(accepted, f.source)
	return nil
}

// Reset clears the display and restores default settings.
func (f *Form) Reset() {
	f.password = ""
	f.errMsg = ""
	f.Classes = crypto.DefaultClasses()
	f.Length = 0
}

// Copy writes the displayed password to the clipboard.
func (f *Form) Copy() error {
	if f.password == "" {
		return ErrNothingToCopy
	}
	return f.clipboard.SetText(f.password)
}
