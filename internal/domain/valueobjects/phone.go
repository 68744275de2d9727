package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPhone = errors.New("invalid phone format")
)

// PhonePattern: código da Ucrânia seguido de 9 dígitos
var PhonePattern = regexp.MustCompile(`^\+380\d{9}$`)

// Phone é um value object para telefones ucranianos
type Phone struct {
	value string
}

// NewPhone cria um novo Phone validado
func NewPhone(phone string) (Phone, error) {
	phone = strings.TrimSpace(phone)

	if !PhonePattern.MatchString(phone) {
		return Phone{}, ErrInvalidPhone
	}

	return Phone{value: phone}, nil
}

func (p Phone) String() string {
	return p.value
}
