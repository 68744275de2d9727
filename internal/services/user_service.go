package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rafabene/staffdir-backend/internal/domain/entities"
	"github.com/rafabene/staffdir-backend/internal/domain/errors"
	"github.com/rafabene/staffdir-backend/internal/domain/ports"
	"github.com/rafabene/staffdir-backend/internal/domain/repositories"
)

// UserPage é uma página da listagem
type UserPage struct {
	Users      []*entities.Person
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// HasNext indica se existe página seguinte
func (p *UserPage) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrev indica se existe página anterior
func (p *UserPage) HasPrev() bool {
	return p.Page > 1
}

// UserService contém as consultas de leitura de pessoas
type UserService struct {
	persons repositories.PersonRepository
	logger  ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(persons repositories.PersonRepository, logger ports.Logger) *UserService {
	return &UserService{
		persons: persons,
		logger:  logger,
	}
}

// ListUsers busca total e página em paralelo
func (s *UserService) ListUsers(ctx context.Context, page, perPage int) (*UserPage, error) {
	var (
		total int64
		users []*entities.Person
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.persons.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.persons.List(gctx, repositories.PersonFilters{Page: page, PerPage: perPage})
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to list users", "page", page, "count", perPage, "error", err)
		return nil, err
	}

	return &UserPage{
		Users:      users,
		Total:      total,
		TotalPages: TotalPages(total, perPage),
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// TotalPages é ceil(total/perPage)
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// GetUser busca uma pessoa por ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*entities.Person, error) {
	person, err := s.persons.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch user", "user_id", id, "error", err)
		return nil, err
	}
	if person == nil {
		return nil, errors.ErrPersonNotFound
	}
	return person, nil
}
