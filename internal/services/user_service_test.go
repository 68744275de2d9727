package services_test

import (
	"context"
	"fmt"
	"io"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/staffdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/staffdir-backend/internal/domain/errors"
	"github.com/rafabene/staffdir-backend/internal/domain/valueobjects"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/logging"
	"github.com/rafabene/staffdir-backend/internal/services"
)

func seedPersons(repo *fakePersonRepository, n int, position func(i int) string) {
	for i := 1; i <= n; i++ {
		email, _ := valueobjects.NewEmail(fmt.Sprintf("p%d@example.com", i))
		phone, _ := valueobjects.NewPhone(fmt.Sprintf("+380%09d", i))
		Expect(repo.Create(context.Background(), &entities.Person{
			Name: fmt.Sprintf("Person %d", i), Email: email, Phone: phone,
			Position: position(i), Photo: "eA==",
		})).To(Succeed())
	}
}

var _ = Describe("UserService", func() {
	var (
		repo    *fakePersonRepository
		service *services.UserService
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newFakePersonRepository()
		service = services.NewUserService(repo, logging.NewWithWriter("error", io.Discard))
		seedPersons(repo, 45, func(int) string { return "1" })
	})

	It("calcula o total de páginas e a navegação", func() {
		page, err := service.ListUsers(ctx, 1, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Total).To(Equal(int64(45)))
		Expect(page.TotalPages).To(Equal(5))
		Expect(page.Users).To(HaveLen(10))
		Expect(page.HasPrev()).To(BeFalse())
		Expect(page.HasNext()).To(BeTrue())

		last, err := service.ListUsers(ctx, 5, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(last.Users).To(HaveLen(5))
		Expect(last.HasNext()).To(BeFalse())
		Expect(last.HasPrev()).To(BeTrue())
	})

	It("devolve ErrPersonNotFound para id inexistente", func() {
		_, err := service.GetUser(ctx, 999)
		Expect(err).To(MatchError(domainerrors.ErrPersonNotFound))
	})

	It("devolve os mesmos dados em leituras repetidas", func() {
		first, err := service.GetUser(ctx, 3)
		Expect(err).NotTo(HaveOccurred())
		second, err := service.GetUser(ctx, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	DescribeTable("TotalPages",
		func(total int64, perPage, expected int) {
			Expect(services.TotalPages(total, perPage)).To(Equal(expected))
		},
		Entry("vazio", int64(0), 10, 0),
		Entry("exato", int64(40), 10, 4),
		Entry("resto", int64(45), 10, 5),
		Entry("uma página", int64(3), 10, 1),
	)
})

var _ = Describe("PositionService", func() {
	var (
		repo *fakePersonRepository
		ctx  context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newFakePersonRepository()
	})

	It("devolve ErrPositionsNotFound sem registros", func() {
		service := services.NewPositionService(repo, time.Minute, logging.NewWithWriter("error", io.Discard))
		_, err := service.ListPositions(ctx)
		Expect(err).To(MatchError(domainerrors.ErrPositionsNotFound))
	})

	It("usa o cache até ser invalidado", func() {
		seedPersons(repo, 4, func(i int) string { return fmt.Sprint(i%2 + 1) })
		service := services.NewPositionService(repo, time.Minute, logging.NewWithWriter("error", io.Discard))

		positions, err := service.ListPositions(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(positions).To(HaveLen(2))
		Expect(positions[0]).To(Equal(entities.Position{ID: 1, Name: "2"}))

		_, err = service.ListPositions(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(repo.positionCalls).To(Equal(1))

		service.Invalidate()
		_, err = service.ListPositions(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(repo.positionCalls).To(Equal(2))
	})
})

var _ = Describe("TokenService", func() {
	It("gera 64 bytes aleatórios em base64", func() {
		service := services.NewTokenService()

		a, err := service.Generate()
		Expect(err).NotTo(HaveOccurred())
		b, err := service.Generate()
		Expect(err).NotTo(HaveOccurred())

		Expect(a).NotTo(Equal(b))
		Expect(a).To(HaveLen(88))
	})
})

type fixedGenerator struct{ people []*entities.Person }

func (g fixedGenerator) People(n int) ([]*entities.Person, error) {
	return g.people[:n], nil
}

var _ = Describe("AdminService", func() {
	It("gera pessoas pulando duplicatas e apaga todas", func() {
		ctx := context.Background()
		repo := newFakePersonRepository()
		invalidator := &fakeInvalidator{}

		email, _ := valueobjects.NewEmail("dup@example.com")
		phone, _ := valueobjects.NewPhone("+380000000001")
		other, _ := valueobjects.NewPhone("+380000000002")
		people := []*entities.Person{
			{Name: "A", Email: email, Phone: phone, Position: "1", Photo: "eA=="},
			{Name: "B", Email: email, Phone: other, Position: "1", Photo: "eA=="},
		}

		service := services.NewAdminService(repo, fixedGenerator{people: people}, invalidator, logging.NewWithWriter("error", io.Discard))

		inserted, err := service.Generate(ctx, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(inserted).To(Equal(1))

		deleted, err := service.DeleteAll(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(deleted).To(Equal(int64(1)))
		Expect(invalidator.calls).To(Equal(2))
	})
})
