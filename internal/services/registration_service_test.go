package services_test

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/staffdir-backend/internal/domain/errors"
	"github.com/rafabene/staffdir-backend/internal/domain/ports"
	"github.com/rafabene/staffdir-backend/internal/domain/validation"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/logging"
	"github.com/rafabene/staffdir-backend/internal/services"
)

var _ = Describe("RegistrationService", func() {
	var (
		repo        *fakePersonRepository
		images      *fakeImageProcessor
		metrics     *fakeMetrics
		invalidator *fakeInvalidator
		service     *services.RegistrationService
		input       validation.RegistrationInput
		ctx         context.Context
	)

	newService := func(opts ...services.RegistrationOption) *services.RegistrationService {
		opts = append([]services.RegistrationOption{
			services.WithMetrics(metrics),
			services.WithPositionsInvalidator(invalidator),
		}, opts...)
		return services.NewRegistrationService(
			validation.New(),
			images,
			repo,
			fakeUnitOfWork{},
			logging.NewWithWriter("error", io.Discard),
			opts...,
		)
	}

	BeforeEach(func() {
		ctx = context.Background()
		repo = newFakePersonRepository()
		images = &fakeImageProcessor{out: []byte("thumbnail-bytes")}
		metrics = newFakeMetrics()
		invalidator = &fakeInvalidator{}
		service = newService()
		input = validation.RegistrationInput{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+380501234567",
			Position: "3",
			Photo:    photoUpload([]byte("raw-jpeg")),
		}
	})

	Context("quando a entrada é válida", func() {
		It("persiste a pessoa com a foto processada em base64", func() {
			result, err := service.Register(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.PersonID).To(BeNumerically(">", 0))

			stored, _ := repo.FindByID(ctx, result.PersonID)
			Expect(stored).NotTo(BeNil())
			Expect(stored.Name).To(Equal("Jane Doe"))
			Expect(stored.Position).To(Equal("3"))

			decoded, err := base64.StdEncoding.DecodeString(stored.Photo)
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded).To(Equal([]byte("thumbnail-bytes")))
		})

		It("registra a métrica e invalida o cache de cargos", func() {
			_, err := service.Register(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(metrics.outcomes[ports.OutcomeRegistered]).To(Equal(1))
			Expect(invalidator.calls).To(Equal(1))
		})

		It("normaliza o email antes de persistir", func() {
			input.Email = "Jane@Example.com"
			result, err := service.Register(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			stored, _ := repo.FindByID(ctx, result.PersonID)
			Expect(stored.Email.String()).To(Equal("jane@example.com"))
		})
	})

	Context("quando o nome tem espaços nas pontas", func() {
		It("mede e grava o valor como enviado", func() {
			input.Name = " J "
			result, err := service.Register(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			stored, _ := repo.FindByID(ctx, result.PersonID)
			Expect(stored.Name).To(Equal(" J "))
		})
	})

	Context("quando a validação falha", func() {
		DescribeTable("rejeita sem processar imagem nem gravar",
			func(mutate func(*validation.RegistrationInput), field string, rule domainerrors.Rule) {
				mutate(&input)

				_, err := service.Register(ctx, input)

				var failure *domainerrors.ValidationError
				Expect(errors.As(err, &failure)).To(BeTrue())
				Expect(failure.Field).To(Equal(field))
				Expect(failure.Rule).To(Equal(rule))
				Expect(images.calls).To(BeZero())
				Expect(repo.findCalls).To(BeZero())
				Expect(repo.Count(ctx)).To(BeZero())
				Expect(metrics.outcomes[ports.OutcomeRejected]).To(Equal(1))
			},
			Entry("nome curto", func(in *validation.RegistrationInput) { in.Name = "J" }, "name", domainerrors.RuleInvalidName),
			Entry("nome longo", func(in *validation.RegistrationInput) { in.Name = strings.Repeat("x", 61) }, "name", domainerrors.RuleInvalidName),
			Entry("telefone inválido", func(in *validation.RegistrationInput) { in.Phone = "+38050123" }, "phone", domainerrors.RuleInvalidPhone),
			Entry("telefone com espaços", func(in *validation.RegistrationInput) { in.Phone = " +380501234567 " }, "phone", domainerrors.RuleInvalidPhone),
			Entry("email que cresce ao virar minúsculo", func(in *validation.RegistrationInput) {
				in.Email = "Ⱥ" + strings.Repeat("a", 241) + "@example.com"
			}, "email", domainerrors.RuleInvalidEmail),
			Entry("cargo inválido", func(in *validation.RegistrationInput) { in.Position = "boss" }, "position", domainerrors.RuleInvalidPosition),
			Entry("foto ausente", func(in *validation.RegistrationInput) { in.Photo = nil }, "photo", domainerrors.RuleMissingPhoto),
			Entry("foto grande", func(in *validation.RegistrationInput) { in.Photo.Size = validation.MaxPhotoSize + 1 }, "photo", domainerrors.RulePhotoTooLarge),
		)
	})

	Context("quando já existe pessoa com o mesmo email ou telefone", func() {
		BeforeEach(func() {
			_, err := service.Register(ctx, input)
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejeita pelo pre-check sem alterar a contagem", func() {
			again := input
			again.Phone = "+380509999999"

			_, err := service.Register(ctx, again)
			Expect(err).To(MatchError(domainerrors.ErrPersonAlreadyExists))
			Expect(repo.Count(ctx)).To(Equal(int64(1)))
			Expect(metrics.outcomes[ports.OutcomeConflict]).To(Equal(1))
		})

		It("rejeita pela restrição única quando o pre-check perde a corrida", func() {
			repo.hidePrecheck = true

			_, err := service.Register(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrPersonAlreadyExists))
			Expect(repo.Count(ctx)).To(Equal(int64(1)))
		})
	})

	Context("quando o processamento de imagem falha", func() {
		It("falha sem gravar nada", func() {
			images.err = domainerrors.Wrap(domainerrors.ErrImageProcessing, "decode", errors.New("bad jpeg"))

			_, err := service.Register(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrImageProcessing))
			Expect(repo.findCalls).To(BeZero())
			Expect(repo.Count(ctx)).To(BeZero())
			Expect(metrics.outcomes[ports.OutcomeFailed]).To(Equal(1))
		})

		It("falha quando a foto não pode ser aberta", func() {
			input.Photo.Open = func() (io.ReadCloser, error) { return nil, errors.New("gone") }

			_, err := service.Register(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrImageProcessing))
			Expect(images.calls).To(BeZero())
		})
	})

	Context("quando o armazenamento falha", func() {
		It("propaga ErrStorage", func() {
			repo.createErr = domainerrors.Wrap(domainerrors.ErrStorage, "insert person", errors.New("connection reset"))

			_, err := service.Register(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrStorage))
			Expect(invalidator.calls).To(BeZero())
		})
	})

	Context("quando uma dependência trava", func() {
		It("encerra com ErrTimeout", func() {
			images.block = true
			service = newService(services.WithTimeout(20 * time.Millisecond))

			_, err := service.Register(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrTimeout))
			Expect(repo.Count(ctx)).To(BeZero())
			Expect(metrics.outcomes[ports.OutcomeTimeout]).To(Equal(1))
		})
	})
})
