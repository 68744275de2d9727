package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/staffdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/staffdir-backend/internal/domain/errors"
	"github.com/rafabene/staffdir-backend/internal/domain/repositories"
	"github.com/rafabene/staffdir-backend/internal/domain/valueobjects"
)

// PersonRepository implementa repositories.PersonRepository
type PersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository cria um novo PersonRepository
func NewPersonRepository(db *gorm.DB) repositories.PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) ([]*entities.Person, error) {
	var models []*PersonModel

	err := r.getDB(ctx).
		Where("email = ? OR phone = ?", email, phone).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, translate("find person by email or phone", err)
	}

	return r.toEntities(models)
}

func (r *PersonRepository) Create(ctx context.Context, person *entities.Person) error {
	if err := person.Validate(); err != nil {
		return domainerrors.Wrap(domainerrors.ErrStorage, "insert person", err)
	}
	model := r.toModel(person)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return translate("insert person", err)
	}

	person.ID = model.ID
	person.CreatedAt = model.CreatedAt
	return nil
}

func (r *PersonRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.getDB(ctx).Model(&PersonModel{}).Count(&total).Error; err != nil {
		return 0, translate("count persons", err)
	}
	return total, nil
}

func (r *PersonRepository) List(ctx context.Context, filters repositories.PersonFilters) ([]*entities.Person, error) {
	var models []*PersonModel

	err := r.getDB(ctx).
		Order("id ASC").
		Limit(filters.PerPage).
		Offset(filters.Offset()).
		Find(&models).Error
	if err != nil {
		return nil, translate("list persons", err)
	}

	return r.toEntities(models)
}

func (r *PersonRepository) FindByID(ctx context.Context, id uint) (*entities.Person, error) {
	var model PersonModel

	if err := r.getDB(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translate("find person by id", err)
	}

	return r.toEntity(&model)
}

// ListDistinctPositions retorna um item por valor de cargo, identificado
// pelo menor id de pessoa que o usa
func (r *PersonRepository) ListDistinctPositions(ctx context.Context) ([]entities.Position, error) {
	var rows []struct {
		ID   uint
		Name string
	}

	err := r.getDB(ctx).
		Model(&PersonModel{}).
		Select("MIN(id) AS id, position AS name").
		Group("position").
		Order("MIN(id) ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translate("list distinct positions", err)
	}

	positions := make([]entities.Position, 0, len(rows))
	for _, row := range rows {
		positions = append(positions, entities.Position{ID: row.ID, Name: row.Name})
	}
	return positions, nil
}

func (r *PersonRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.getDB(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&PersonModel{})
	if result.Error != nil {
		return 0, translate("delete all persons", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *PersonRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// translate converte erros do GORM nos erros de domínio
func translate(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domainerrors.ErrPersonAlreadyExists
	case errors.Is(err, context.DeadlineExceeded):
		return domainerrors.Wrap(domainerrors.ErrTimeout, op, err)
	default:
		return domainerrors.Wrap(domainerrors.ErrStorage, op, err)
	}
}

// Conversores
func (r *PersonRepository) toModel(person *entities.Person) *PersonModel {
	return &PersonModel{
		ID:        person.ID,
		Name:      person.Name,
		Email:     person.Email.String(),
		Phone:     person.Phone.String(),
		Position:  person.Position,
		Photo:     person.Photo,
		CreatedAt: person.CreatedAt,
	}
}

func (r *PersonRepository) toEntity(model *PersonModel) (*entities.Person, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrStorage, "decode person email", err)
	}
	phone, err := valueobjects.NewPhone(model.Phone)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrStorage, "decode person phone", err)
	}

	return &entities.Person{
		ID:        model.ID,
		Name:      model.Name,
		Email:     email,
		Phone:     phone,
		Position:  model.Position,
		Photo:     model.Photo,
		CreatedAt: model.CreatedAt,
	}, nil
}

func (r *PersonRepository) toEntities(models []*PersonModel) ([]*entities.Person, error) {
	persons := make([]*entities.Person, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		persons = append(persons, entity)
	}

	return persons, nil
}
