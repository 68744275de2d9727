// Package seed gera pessoas fictícias para popular ambientes de desenvolvimento.
package seed

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/disintegration/imaging"

	"github.com/rafabene/staffdir-backend/internal/domain/entities"
	"github.com/rafabene/staffdir-backend/internal/domain/valueobjects"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/thumbnail"
)

// DefaultCount é a quantidade gerada por padrão
const DefaultCount = 45

const maxPosition = 10

// Generator cria pessoas fictícias com foto no mesmo formato das reais
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator cria um gerador; seed 0 usa uma semente aleatória
func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// People gera n pessoas com e-mail e telefone distintos entre si
func (g *Generator) People(n int) ([]*entities.Person, error) {
	people := make([]*entities.Person, 0, n)
	seenEmail := make(map[string]bool, n)
	seenPhone := make(map[string]bool, n)
	now := time.Now().UTC()

	for len(people) < n {
		name := g.faker.Name()
		if len([]rune(name)) > 60 {
			continue
		}

		email, err := valueobjects.NewEmail(g.faker.Username() + "@example.com")
		if err != nil || seenEmail[email.String()] {
			continue
		}
		phone, err := valueobjects.NewPhone("+380" + g.faker.Numerify("#########"))
		if err != nil || seenPhone[phone.String()] {
			continue
		}

		photo, err := g.photo()
		if err != nil {
			return nil, fmt.Errorf("generate photo: %w", err)
		}

		seenEmail[email.String()] = true
		seenPhone[phone.String()] = true
		people = append(people, &entities.Person{
			Name:      name,
			Email:     email,
			Phone:     phone,
			Position:  strconv.Itoa(g.faker.Number(1, maxPosition)),
			Photo:     photo,
			CreatedAt: g.faker.DateRange(now.AddDate(-1, 0, 0), now),
		})
	}

	return people, nil
}

// photo gera uma miniatura de cor sólida já no tamanho final
func (g *Generator) photo() (string, error) {
	fill := color.NRGBA{
		R: uint8(g.faker.Number(0, 255)),
		G: uint8(g.faker.Number(0, 255)),
		B: uint8(g.faker.Number(0, 255)),
		A: 255,
	}
	data, err := thumbnail.Encode(imaging.New(thumbnail.Size, thumbnail.Size, fill))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
