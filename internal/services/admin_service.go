package services

import (
	"context"
	"errors"

	"github.com/rafabene/staffdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/staffdir-backend/internal/domain/errors"
	"github.com/rafabene/staffdir-backend/internal/domain/ports"
	"github.com/rafabene/staffdir-backend/internal/domain/repositories"
)

// PeopleGenerator produz pessoas fictícias
type PeopleGenerator interface {
	People(n int) ([]*entities.Person, error)
}

// AdminService agrupa as operações de manutenção (seed e limpeza)
type AdminService struct {
	persons   repositories.PersonRepository
	generator PeopleGenerator
	positions PositionsInvalidator
	logger    ports.Logger
}

// NewAdminService cria um novo AdminService
func NewAdminService(persons repositories.PersonRepository, generator PeopleGenerator, positions PositionsInvalidator, logger ports.Logger) *AdminService {
	return &AdminService{
		persons:   persons,
		generator: generator,
		positions: positions,
		logger:    logger,
	}
}

// Generate insere n pessoas fictícias; colisões com registros existentes
// são puladas. Retorna quantas foram inseridas.
func (s *AdminService) Generate(ctx context.Context, n int) (int, error) {
	people, err := s.generator.People(n)
	if err != nil {
		return 0, domainerrors.Wrap(domainerrors.ErrStorage, "generate people", err)
	}

	inserted := 0
	for _, person := range people {
		err := s.persons.Create(ctx, person)
		if errors.Is(err, domainerrors.ErrPersonAlreadyExists) {
			s.logger.Warn("skipping generated duplicate", "email", person.Email.String())
			continue
		}
		if err != nil {
			return inserted, err
		}
		inserted++
	}

	s.invalidate()
	s.logger.Info("database seeded", "inserted", inserted)
	return inserted, nil
}

// DeleteAll remove todas as pessoas
func (s *AdminService) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := s.persons.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.invalidate()
	s.logger.Info("all users deleted", "deleted", deleted)
	return deleted, nil
}

func (s *AdminService) invalidate() {
	if s.positions != nil {
		s.positions.Invalidate()
	}
}
