package locale

import (
	"errors"
	"fmt"
	"strings"
)

// Language is one of the supported conversation languages.
type Language string

const (
	English Language = "english"
	Kannada Language = "kannada"
)

// ErrInvalidLanguage reports a language selection outside the supported set.
var ErrInvalidLanguage = errors.New("unsupported language")

// Supported returns the supported languages in display order.
func Supported() []Language {
	return []Language{English, Kannada}
}

// ParseLanguage normalizes a spoken or typed language choice. It accepts the
// English names, the Kannada script name and common short forms.
func ParseLanguage(input string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "english", "eng", "en":
		return English, nil
	case "kannada", "kn", "ಕನ್ನಡ":
		return Kannada, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, input)
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == English || l == Kannada
}
