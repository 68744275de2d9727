package services

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/rafabene/staffdir-backend/internal/domain/entities"
	"github.com/rafabene/staffdir-backend/internal/domain/errors"
	"github.com/rafabene/staffdir-backend/internal/domain/ports"
	"github.com/rafabene/staffdir-backend/internal/domain/repositories"
)

const positionsCacheKey = "positions"

// PositionService lista cargos distintos com cache curto
type PositionService struct {
	persons repositories.PersonRepository
	cache   *cache.Cache
	logger  ports.Logger
}

// NewPositionService cria o serviço; ttl <= 0 desliga o cache
func NewPositionService(persons repositories.PersonRepository, ttl time.Duration, logger ports.Logger) *PositionService {
	s := &PositionService{persons: persons, logger: logger}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}
	return s
}

// ListPositions retorna ErrPositionsNotFound quando não há nenhum cargo
func (s *PositionService) ListPositions(ctx context.Context) ([]entities.Position, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(positionsCacheKey); ok {
			return cached.([]entities.Position), nil
		}
	}

	positions, err := s.persons.ListDistinctPositions(ctx)
	if err != nil {
		s.logger.Error("failed to list positions", "error", err)
		return nil, err
	}
	if len(positions) == 0 {
		return nil, errors.ErrPositionsNotFound
	}

	if s.cache != nil {
		s.cache.SetDefault(positionsCacheKey, positions)
	}
	return positions, nil
}

// Invalidate descarta a lista em cache
func (s *PositionService) Invalidate() {
	if s.cache != nil {
		s.cache.Delete(positionsCacheKey)
	}
}
