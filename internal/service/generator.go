package service

import (
	"fmt"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/metrics"
	"github.com/vaultpass/passgen-go/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	source crypto.Source
}

// NewGeneratorService creates a new GeneratorService drawing from source.
func NewGeneratorService(source crypto.Source) *GeneratorService {
	return &GeneratorService{source: source}
}

// Generate validates the request and produces a password. Rejections are
// returned as *crypto.RejectionError values.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	defaults := crypto.DefaultClasses()
	creq := crypto.Request{
		Classes: crypto.Classes{
			Lowercase: boolOrDefault(req.Lowercase, defaults.Lowercase),
			Uppercase: boolOrDefault(req.Uppercase, defaults.Uppercase),
			Numbers:   boolOrDefault(req.Numbers, defaults.Numbers),
			Symbols:   boolOrDefault(req.Symbols, defaults.Symbols),
		},
		Length: req.Length,
	}

	accepted, err := crypto.Validate(creq)
	if err != nil {
		if reason, ok := crypto.ReasonOf(err); ok {
			metrics.IncRejection(reason.String())
		}
		return model.GenerateResponse{}, err
	}

	password := crypto.Generate(accepted, s.source)
	recordClasses(creq.Classes)
	metrics.IncGenerated(creq.Length)

	resp := model.GenerateResponse{
		Password:    password,
		Length:      len(password),
		EntropyBits: crypto.Entropy(password),
		Weak:        crypto.CheckStrength(password, crypto.MinEntropyBits) != nil,
	}

	if req.Hash {
		hash, err := crypto.HashPassword(password)
		if err != nil {
			return model.GenerateResponse{}, fmt.Errorf("hashing password: %w", err)
		}
		resp.Hash = hash
	}

	return resp, nil
}

// Classes describes the selectable character classes.
func (s *GeneratorService) Classes() model.ClassesResponse {
	defaults := crypto.DefaultClasses()
	enabled := map[string]bool{
		"lowercase": defaults.Lowercase,
		"uppercase": defaults.Uppercase,
		"numbers":   defaults.Numbers,
		"symbols":   defaults.Symbols,
	}

	sets := crypto.ClassSets()
	infos := make([]model.ClassInfo, len(sets))
	for i, cs := range sets {
		infos[i] = model.ClassInfo{
			Name:       cs.Name,
			Characters: cs.Chars,
			Default:    enabled[cs.Name],
		}
	}

	return model.ClassesResponse{
		Classes:   infos,
		MinLength: crypto.MinLength,
		MaxLength: crypto.MaxLength,
	}
}

func recordClasses(c crypto.Classes) {
	if c.Lowercase {
		metrics.IncClass("lowercase")
	}
	if c.Uppercase {
		metrics.IncClass("uppercase")
	}
	if c.Symbols {
		metrics.IncClass("symbols")
	}
	if c.Numbers {
		metrics.IncClass("numbers")
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
