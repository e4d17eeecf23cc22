package crypto

import "errors"

const (
	MinLength = 6
	MaxLength = 30
)

// Reason identifies why a request was rejected.
type Reason int

const (
	ReasonTooShort Reason = iota + 1
	ReasonTooLong
	ReasonNoClassSelected
)

// String returns the stable code used in API responses and metric labels.
func (r Reason) String() string {
	switch r {
	case ReasonTooShort:
		return "too_short"
	case ReasonTooLong:
		return "too_long"
	case ReasonNoClassSelected:
		return "no_class_selected"
	default:
		return "unknown"
	}
}

// RejectionError is returned by Validate. Compare against the Err* sentinels
// with errors.Is.
type RejectionError struct {
	Reason  Reason
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

var (
	ErrTooShort        = &RejectionError{Reason: ReasonTooShort, Message: "password must be 6 characters or longer"}
	ErrTooLong         = &RejectionError{Reason: ReasonTooLong, Message: "password must be 30 characters or shorter"}
	ErrNoClassSelected = &RejectionError{Reason: ReasonNoClassSelected, Message: "please select at least one character class"}
)

// ReasonOf extracts the rejection reason from err.
func ReasonOf(err error) (Reason, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Reason, true
	}
	return 0, false
}

// Accepted is a request that passed Validate. Only Validate can build one.
type Accepted struct {
	req Request
}

// Request returns the validated request unchanged.
func (a Accepted) Request() Request {
	return a.req
}

// Validate checks the length bounds and then the class selection.
// The first failing check wins.
func Validate(req Request) (Accepted, error) {
	if req.Length < MinLength {
		return Accepted{}, ErrTooShort
	}
	if req.Length > MaxLength {
		return Accepted{}, ErrTooLong
	}
	if !req.Classes.Any() {
		return Accepted{}, ErrNoClassSelected
	}
	return Accepted{req: req}, nil
}
