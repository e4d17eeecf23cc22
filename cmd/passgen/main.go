package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
)

const maxCount = 1000

// Config holds the parsed CLI flags.
type Config struct {
	Classes crypto.Classes
	Length  int
	Count   int
	Source  string
	Seed    uint64
	Seeded  bool
}

// ParseFlags registers and parses command-line flags on fs.
func ParseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Classes: crypto.DefaultClasses()}

	fs.IntVar(&cfg.Length, "length", 0, "Password length (6-30)")
	fs.IntVar(&cfg.Length, "l", 0, "Password length (shorthand)")

	fs.BoolVar(&cfg.Classes.Lowercase, "lowercase", true, "Include lowercase letters")
	fs.BoolVar(&cfg.Classes.Uppercase, "uppercase", false, "Include uppercase letters")
	fs.BoolVar(&cfg.Classes.Uppercase, "u", false, "Include uppercase (shorthand)")
	fs.BoolVar(&cfg.Classes.Numbers, "numbers", false, "Include digits")
	fs.BoolVar(&cfg.Classes.Numbers, "n", false, "Include digits (shorthand)")
	fs.BoolVar(&cfg.Classes.Symbols, "symbols", false, "Include symbols")
	fs.BoolVar(&cfg.Classes.Symbols, "s", false, "Include symbols (shorthand)")

	fs.IntVar(&cfg.Count, "count", 1, "Number of passwords to generate")
	fs.IntVar(&cfg.Count, "c", 1, "Number of passwords (shorthand)")

	fs.StringVar(&cfg.Source, "source", "crypto", "Random source: crypto or math")
	seed := fs.String("seed", "", "Seed for reproducible output (overrides -source)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *seed != "" {
		v, err := strconv.ParseUint(*seed, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid -seed %q: %w", *seed, err)
		}
		cfg.Seed, cfg.Seeded = v, true
	}
	return cfg, nil
}

func (c Config) source() (crypto.Source, error) {
	if c.Seeded {
		return crypto.NewSeededSource(c.Seed), nil
	}
	return crypto.SourceByName(c.Source)
}

// Run validates the settings once and generates cfg.Count passwords.
func Run(cfg Config) ([]string, error) {
	src, err := cfg.source()
	if err != nil {
		return nil, err
	}

	accepted, err := crypto.Validate(crypto.Request{Classes: cfg.Classes, Length: cfg.Length})
	if err != nil {
		return nil, err
	}

	if cfg.Count < 1 {
		cfg.Count = 1
	}
	if cfg.Count > maxCount {
		return nil, fmt.Errorf("count %d exceeds maximum of %d", cfg.Count, maxCount)
	}
	passwords := make([]string, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		passwords = append(passwords, crypto.Generate(accepted, src))
	}
	return passwords, nil
}

// NewForm builds an interactive form drawing from the configured source.
func NewForm(cfg Config, clipboard form.Clipboard) (*form.Form, error) {
	src, err := cfg.source()
	if err != nil {
		return nil, err
	}
	f := form.New(src, clipboard)
	f.Classes = cfg.Classes
	return f, nil
}

// RunInteractive drives a form from r: it prompts for the settings, then
// reads commands (g)enerate, (r)eset, (c)opy, (s)ettings and (q)uit.
func RunInteractive(r io.Reader, w io.Writer, f *form.Form) {
	scanner := bufio.NewScanner(r)

	fmt.Fprintln(w, "=== Generate Password ===")
	promptSettings(scanner, w, f)
	fmt.Fprintln(w, "Commands: g = generate, r = reset, c = copy, s = settings, q = quit")

	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			return
		}

		switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
		case "g", "generate":
			_ = f.Submit()
			display(w, f)
		case "r", "reset":
			f.Reset()
			fmt.Fprintln(w, "Settings reset.")
		case "c", "copy":
			if err := f.Copy(); err != nil {
				if errors.Is(err, form.ErrNothingToCopy) {
					fmt.Fprintln(w, "Nothing to copy")
				} else {
					fmt.Fprintf(w, "copy failed: %v\n", err)
				}
				continue
			}
			fmt.Fprintln(w, "Copied to clipboard.")
		case "s", "settings":
			promptSettings(scanner, w, f)
		case "q", "quit", "exit":
			return
		case "":
		default:
			fmt.Fprintln(w, "Unknown command")
		}
	}
}

func promptSettings(scanner *bufio.Scanner, w io.Writer, f *form.Form) {
	fmt.Fprintf(w, "Password length [%d]: ", f.Length)
	if scanner.Scan() {
		if v, err := strconv.Atoi(strings.TrimSpace(scanner.Text())); err == nil {
			f.Length = v
		}
	}

	f.Classes.Lowercase = promptYesNo(scanner, w, "Include lowercase?", f.Classes.Lowercase)
	f.Classes.Numbers = promptYesNo(scanner, w, "Include numbers?", f.Classes.Numbers)
	f.Classes.Uppercase = promptYesNo(scanner, w, "Include uppercase?", f.Classes.Uppercase)
	f.Classes.Symbols = promptYesNo(scanner, w, "Include symbols?", f.Classes.Symbols)
}

func promptYesNo(scanner *bufio.Scanner, w io.Writer, label string, current bool) bool {
	hint := "y/N"
	if current {
		hint = "Y/n"
	}
	fmt.Fprintf(w, "%s [%s]: ", label, hint)
	if !scanner.Scan() {
		return current
	}
	switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return current
	}
}

func display(w io.Writer, f *form.Form) {
	if f.Error() != "" {
		fmt.Fprintf(w, "Error: %s\n", f.Error())
		return
	}
	fmt.Fprintln(w, f.Password())
}

// runToken mints an API token for the generate endpoint.
func runToken(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := fs.String("subject", "", "Client name stored in the token")
	ttl := fs.Duration("ttl", 24*time.Hour, "Token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return errors.New("JWT_SECRET is not set")
	}

	token, err := crypto.IssueToken(*subject, secret, *ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, token)
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	args := os.Args[1:]

	if len(args) > 0 && args[0] == "token" {
		if err := runToken(args[1:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := ParseFlags(flag.CommandLine, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	// Without a length the settings are collected interactively.
	if cfg.Length == 0 {
		f, err := NewForm(cfg, form.TerminalClipboard{W: os.Stdout})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		RunInteractive(os.Stdin, os.Stdout, f)
		return
	}

	passwords, err := Run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for _, pw := range passwords {
		fmt.Println(pw)
	}
}
