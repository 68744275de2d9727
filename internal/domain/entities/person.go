package entities

import (
	"errors"
	"time"

	"github.com/rafabene/staffdir-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidPersonData = errors.New("invalid person data")
)

// Person representa um registro do diretório de pessoal
type Person struct {
	ID        uint
	Name      string
	Email     valueobjects.Email
	Phone     valueobjects.Phone
	Position  string
	Photo     string // JPEG otimizado em base64
	CreatedAt time.Time
}

// Validate verifica invariantes mínimas antes de persistir
func (p *Person) Validate() error {
	if p.Name == "" || p.Email.String() == "" || p.Phone.String() == "" {
		return ErrInvalidPersonData
	}
	if p.Position == "" {
		return ErrInvalidPersonData
	}
	if p.Photo == "" {
		return ErrInvalidPersonData
	}
	return nil
}

// Position é uma entrada da listagem de cargos distintos
type Position struct {
	ID   uint
	Name string
}
