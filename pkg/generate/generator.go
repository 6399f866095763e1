/* pkg/generate/generator.go */

// Package generate produces password strings: uniform random, from L/U/N/S
// pattern templates, with per-class requirements, or in a memorable
// consonant-vowel-digit form. All draws and shuffles use crypto/rand.
package generate

import (
	"crypto/rand"
	"math/big"
	"strings"

	cerr "github.com/cockroachdb/errors"

	"github.com/spartansec/spartanpass/pkg/config"
)

const (
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars = "0123456789"

	consonants = "bcdfghjklmnprstvwxyz"
	vowels     = "aeiou"
)

// Generator produces password strings. The zero value is not usable; build
// one with New or NewWithOptions.
type Generator struct {
	length  int
	symbols string
}

// New returns a Generator with the default length and symbol charset.
func New() *Generator {
	return NewWithOptions(config.DefaultPasswordLength, config.PasswordCharset)
}

// NewWithOptions returns a Generator with a custom default length and symbol
// charset. Non-positive lengths and empty charsets fall back to the defaults.
func NewWithOptions(length int, symbols string) *Generator {
	if length <= 0 {
		length = config.DefaultPasswordLength
	}
	if symbols == "" {
		symbols = config.PasswordCharset
	}
	return &Generator{length: length, symbols: symbols}
}

// Length returns the current default password length.
func (g *Generator) Length() int {
	return g.length
}

// SetLength updates the default password length. No-op for non-positive
// values.
func (g *Generator) SetLength(length int) {
	if length > 0 {
		g.length = length
	}
}

// Generate draws length characters uniformly from letters, digits and the
// configured symbols. A non-positive length uses the configured default.
func (g *Generator) Generate(length int) (string, error) {
	n := g.resolveLength(length)
	full := lowerChars + upperChars + digitChars + g.symbols

	pw := make([]byte, n)
	for i := range pw {
		c, err := randomChar(full)
		if err != nil {
			return "", err
		}
		pw[i] = c
	}
	return string(pw), nil
}

// GenerateFromPattern draws one character per pattern code (L=lowercase,
// U=uppercase, N=digit, S=symbol, case-insensitive) and shuffles the result.
// An empty or malformed pattern yields the empty-string sentinel; callers
// wanting a user-facing diagnostic should call ValidatePattern first.
func (g *Generator) GenerateFromPattern(pattern string) (string, error) {
	if !g.ValidatePattern(pattern) {
		return "", nil
	}

	pw := make([]byte, 0, len(pattern))
	for _, code := range strings.ToUpper(pattern) {
		var set string
		switch code {
		case 'L':
			set = lowerChars
		case 'U':
			set = upperChars
		case 'N':
			set = digitChars
		case 'S':
			set = g.symbols
		}
		c, err := randomChar(set)
		if err != nil {
			return "", err
		}
		pw = append(pw, c)
	}

	if err := shuffle(pw); err != nil {
		return "", err
	}
	return string(pw), nil
}

// ValidatePattern reports whether pattern is non-empty and contains only
// L, U, N and S codes (case-insensitive).
func (g *Generator) ValidatePattern(pattern string) bool {
	if pattern == "" {
		return false
	}
	for _, code := range strings.ToUpper(pattern) {
		switch code {
		case 'L', 'U', 'N', 'S':
		default:
			return false
		}
	}
	return true
}

// GenerateWithRequirements guarantees one character from each enabled class
// (lower, upper, digit, symbol, in that order), fills the remainder from the
// union of enabled classes, and shuffles. With no class enabled the charset
// is empty and the result is empty regardless of the requested length.
func (g *Generator) GenerateWithRequirements(length int, useLower, useUpper, useDigits, useSymbols bool) (string, error) {
	n := g.resolveLength(length)

	var charset string
	var pw []byte

	seed := func(set string) error {
		charset += set
		c, err := randomChar(set)
		if err != nil {
			return err
		}
		pw = append(pw, c)
		return nil
	}

	if useLower {
		if err := seed(lowerChars); err != nil {
			return "", err
		}
	}
	if useUpper {
		if err := seed(upperChars); err != nil {
			return "", err
		}
	}
	if useDigits {
		if err := seed(digitChars); err != nil {
			return "", err
		}
	}
	if useSymbols {
		if err := seed(g.symbols); err != nil {
			return "", err
		}
	}

	for len(pw) < n && charset != "" {
		c, err := randomChar(charset)
		if err != nil {
			return "", err
		}
		pw = append(pw, c)
	}

	if err := shuffle(pw); err != nil {
		return "", err
	}
	return string(pw), nil
}

// GenerateMemorable cycles consonant, vowel, digit by position, then
// upper-cases one random position and, for lengths above one, replaces one
// random position with a symbol. The two positions are chosen independently
// and may coincide.
func (g *Generator) GenerateMemorable(length int) (string, error) {
	n := g.resolveLength(length)

	pw := make([]byte, n)
	for i := range pw {
		var set string
		switch i % 3 {
		case 0:
			set = consonants
		case 1:
			set = vowels
		default:
			set = digitChars
		}
		c, err := randomChar(set)
		if err != nil {
			return "", err
		}
		pw[i] = c
	}

	if len(pw) > 0 {
		idx, err := randomInt(len(pw))
		if err != nil {
			return "", err
		}
		if pw[idx] >= 'a' && pw[idx] <= 'z' {
			pw[idx] -= 'a' - 'A'
		}
	}

	if len(pw) > 1 {
		idx, err := randomInt(len(pw))
		if err != nil {
			return "", err
		}
		c, err := randomChar(g.symbols)
		if err != nil {
			return "", err
		}
		pw[idx] = c
	}

	return string(pw), nil
}

func (g *Generator) resolveLength(length int) int {
	if length > 0 {
		return length
	}
	return g.length
}

func randomChar(charset string) (byte, error) {
	if charset == "" {
		return 0, cerr.New("empty charset")
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, cerr.Wrap(err, "read random source")
	}
	return charset[n.Int64()], nil
}

func randomInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, cerr.Wrap(err, "read random source")
	}
	return int(v.Int64()), nil
}

// shuffle applies a Fisher-Yates permutation in place.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
