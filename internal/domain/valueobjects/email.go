package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

// MaxEmailLength acompanha a coluna users.email
const MaxEmailLength = 255

var ErrInvalidEmail = errors.New("invalid email format")

// EmailPattern: local@dominio.tld, sem espaços e com uma única arroba
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email guarda o endereço já normalizado (sem espaços, minúsculo).
// Dois cadastros que diferem só em caixa colidem no índice único.
type Email struct {
	value string
}

// IsValidEmail aplica as mesmas regras de NewEmail sem normalizar
func IsValidEmail(s string) bool {
	return len(s) <= MaxEmailLength && EmailPattern.MatchString(s)
}

func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if !IsValidEmail(normalized) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: normalized}, nil
}

// Domain é a parte após a arroba
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

func (e Email) String() string {
	return e.value
}
