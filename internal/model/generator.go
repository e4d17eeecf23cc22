package model

// GenerateRequest represents a password generation request.
// Pointer bools distinguish a missing flag (nil -> form default) from an explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
	Hash      bool  `json:"hash"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password    string  `json:"password"`
	Length      int     `json:"length"`
	EntropyBits float64 `json:"entropy_bits"`
	Weak        bool    `json:"weak"`
	Hash        string  `json:"hash,omitempty"`
}

// RejectionResponse is returned when the requested settings are not accepted.
type RejectionResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// ClassInfo describes one selectable character class.
type ClassInfo struct {
	Name       string `json:"name"`
	Characters string `json:"characters"`
	Default    bool   `json:"default"`
}

// ClassesResponse lists the selectable classes and the accepted length range.
type ClassesResponse struct {
	Classes   []ClassInfo `json:"classes"`
	MinLength int         `json:"min_length"`
	MaxLength int         `json:"max_length"`
}
