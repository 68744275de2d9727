package repositories

import (
	"context"
	"math"

	"github.com/rafabene/staffdir-backend/internal/domain/entities"
)

// PersonRepository define a interface para persistência de pessoas
type PersonRepository interface {
	FindByEmailOrPhone(ctx context.Context, email, phone string) ([]*entities.Person, error)
	Create(ctx context.Context, person *entities.Person) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, filters PersonFilters) ([]*entities.Person, error)
	FindByID(ctx context.Context, id uint) (*entities.Person, error)
	ListDistinctPositions(ctx context.Context) ([]entities.Position, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// PersonFilters contém a paginação da listagem
type PersonFilters struct {
	Page    int // Página (começa em 1)
	PerPage int // Itens por página
}

// Offset calcula o deslocamento da página, (Page-1)*PerPage.
// Sem representação em int satura em math.MaxInt, que não devolve linhas.
func (f PersonFilters) Offset() int {
	if f.Page < 1 || f.PerPage < 1 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.PerPage {
		return math.MaxInt
	}
	return (f.Page - 1) * f.PerPage
}
