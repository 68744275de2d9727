package services_test

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/rafabene/staffdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/staffdir-backend/internal/domain/errors"
	"github.com/rafabene/staffdir-backend/internal/domain/repositories"
	"github.com/rafabene/staffdir-backend/internal/domain/validation"
)

// fakePersonRepository é um repositório em memória com unicidade de email/telefone
type fakePersonRepository struct {
	mu      sync.Mutex
	persons map[uint]*entities.Person
	nextID  uint

	findCalls     int
	positionCalls int
	findErr       error
	createErr     error
	// hidePrecheck simula a corrida em que o pre-check não enxerga o concorrente
	hidePrecheck bool
}

func newFakePersonRepository() *fakePersonRepository {
	return &fakePersonRepository{persons: map[uint]*entities.Person{}, nextID: 1}
}

func (r *fakePersonRepository) FindByEmailOrPhone(_ context.Context, email, phone string) ([]*entities.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.hidePrecheck {
		return nil, nil
	}
	var out []*entities.Person
	for _, p := range r.persons {
		if p.Email.String() == email || p.Phone.String() == phone {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePersonRepository) Create(_ context.Context, person *entities.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, p := range r.persons {
		if p.Email == person.Email || p.Phone == person.Phone {
			return domainerrors.ErrPersonAlreadyExists
		}
	}
	person.ID = r.nextID
	person.CreatedAt = time.Now().UTC()
	r.nextID++
	stored := *person
	r.persons[person.ID] = &stored
	return nil
}

func (r *fakePersonRepository) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.persons)), nil
}

func (r *fakePersonRepository) sorted() []*entities.Person {
	out := make([]*entities.Person, 0, len(r.persons))
	for _, p := range r.persons {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakePersonRepository) List(_ context.Context, filters repositories.PersonFilters) ([]*entities.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.sorted()
	start := min(filters.Offset(), len(all))
	end := min(start+filters.PerPage, len(all))
	return all[start:end], nil
}

func (r *fakePersonRepository) FindByID(_ context.Context, id uint) (*entities.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persons[id], nil
}

func (r *fakePersonRepository) ListDistinctPositions(context.Context) ([]entities.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positionCalls++
	seen := map[string]bool{}
	var out []entities.Position
	for _, p := range r.sorted() {
		if !seen[p.Position] {
			seen[p.Position] = true
			out = append(out, entities.Position{ID: p.ID, Name: p.Position})
		}
	}
	return out, nil
}

func (r *fakePersonRepository) DeleteAll(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.persons))
	r.persons = map[uint]*entities.Person{}
	return n, nil
}

// fakeUnitOfWork executa fn diretamente
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// fakeImageProcessor registra chamadas e devolve uma saída fixa
type fakeImageProcessor struct {
	calls int
	out   []byte
	err   error
	block bool
}

func (p *fakeImageProcessor) Process(ctx context.Context, raw []byte) ([]byte, error) {
	p.calls++
	if p.block {
		<-ctx.Done()
		return nil, domainerrors.Wrap(domainerrors.ErrImageProcessing, "optimize", ctx.Err())
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.out, nil
}

type fakeMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{outcomes: map[string]int{}}
}

func (m *fakeMetrics) ObserveRegistration(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
}

func (m *fakeMetrics) ObserveImageProcessing(time.Duration, error) {}

type fakeInvalidator struct{ calls int }

func (f *fakeInvalidator) Invalidate() { f.calls++ }

func photoUpload(data []byte) *validation.PhotoUpload {
	return &validation.PhotoUpload{
		Filename:    "photo.jpg",
		ContentType: "image/jpeg",
		Size:        int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}
