package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rafabene/staffdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/staffdir-backend/internal/domain/errors"
	"github.com/rafabene/staffdir-backend/internal/domain/ports"
	"github.com/rafabene/staffdir-backend/internal/domain/repositories"
	"github.com/rafabene/staffdir-backend/internal/domain/validation"
	"github.com/rafabene/staffdir-backend/internal/domain/valueobjects"
)

// RegistrationState é uma etapa do fluxo de registro
type RegistrationState string

const (
	StateReceived         RegistrationState = "received"
	StateValidated        RegistrationState = "validated"
	StateImageProcessed   RegistrationState = "image_processed"
	StateDuplicateChecked RegistrationState = "duplicate_checked"
	StatePersisted        RegistrationState = "persisted"
	StateResponded        RegistrationState = "responded"
	StateRejected         RegistrationState = "rejected"
	StateFailed           RegistrationState = "failed"
)

// DefaultRegistrationTimeout limita o fluxo inteiro quando nada é configurado
const DefaultRegistrationTimeout = 30 * time.Second

// RegistrationResult é o resultado de um registro bem-sucedido
type RegistrationResult struct {
	PersonID uint
}

// PositionsInvalidator é avisado quando um novo cargo pode ter surgido
type PositionsInvalidator interface {
	Invalidate()
}

// RegistrationService sequencia validação, imagem e persistência
type RegistrationService struct {
	validator *validation.Validator
	images    ports.ImageProcessor
	persons   repositories.PersonRepository
	uow       ports.UnitOfWork
	metrics   ports.Metrics
	positions PositionsInvalidator
	logger    ports.Logger
	timeout   time.Duration
}

// RegistrationOption configura dependências opcionais
type RegistrationOption func(*RegistrationService)

// WithTimeout define o limite de tempo do fluxo
func WithTimeout(d time.Duration) RegistrationOption {
	return func(s *RegistrationService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithMetrics registra outcomes de registro
func WithMetrics(m ports.Metrics) RegistrationOption {
	return func(s *RegistrationService) {
		s.metrics = m
	}
}

// WithPositionsInvalidator invalida o cache de cargos após inserir
func WithPositionsInvalidator(p PositionsInvalidator) RegistrationOption {
	return func(s *RegistrationService) {
		s.positions = p
	}
}

// NewRegistrationService cria um novo RegistrationService
func NewRegistrationService(
	validator *validation.Validator,
	images ports.ImageProcessor,
	persons repositories.PersonRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
	opts ...RegistrationOption,
) *RegistrationService {
	s := &RegistrationService{
		validator: validator,
		images:    images,
		persons:   persons,
		uow:       uow,
		logger:    logger,
		timeout:   DefaultRegistrationTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register executa o fluxo completo. Erros possíveis:
// *errors.ValidationError, ErrPersonAlreadyExists, ErrImageProcessing,
// ErrStorage e ErrTimeout.
func (s *RegistrationService) Register(ctx context.Context, input validation.RegistrationInput) (*RegistrationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	log := s.logger.With("email", input.Email)
	s.transition(log, StateReceived)

	if failure := s.validator.Validate(input); failure != nil {
		return nil, s.reject(log, failure, ports.OutcomeRejected)
	}
	email, phone, failure := normalizeContacts(input)
	if failure != nil {
		return nil, s.reject(log, failure, ports.OutcomeRejected)
	}
	s.transition(log, StateValidated)

	raw, err := readPhoto(input.Photo)
	if err != nil {
		return nil, s.fail(ctx, log, err)
	}
	thumb, err := s.images.Process(ctx, raw)
	if err != nil {
		return nil, s.fail(ctx, log, err)
	}
	s.transition(log, StateImageProcessed)

	person := &entities.Person{
		Name:     input.Name,
		Email:    email,
		Phone:    phone,
		Position: input.Position,
		Photo:    base64.StdEncoding.EncodeToString(thumb),
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.persons.FindByEmailOrPhone(txCtx, email.String(), phone.String())
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return domainerrors.ErrPersonAlreadyExists
		}
		s.transition(log, StateDuplicateChecked)

		return s.persons.Create(txCtx, person)
	})
	if errors.Is(err, domainerrors.ErrPersonAlreadyExists) {
		return nil, s.reject(log, err, ports.OutcomeConflict)
	}
	if err != nil {
		return nil, s.fail(ctx, log, err)
	}
	s.transition(log.With("user_id", person.ID), StatePersisted)

	if s.positions != nil {
		s.positions.Invalidate()
	}
	s.observe(ports.OutcomeRegistered)
	log.Info("person registered", "user_id", person.ID)
	s.transition(log, StateResponded)

	return &RegistrationResult{PersonID: person.ID}, nil
}

// normalizeContacts converte email e telefone já validados nos value objects.
// O email minúsculo pode ficar maior que o enviado e estourar o limite.
func normalizeContacts(input validation.RegistrationInput) (valueobjects.Email, valueobjects.Phone, *domainerrors.ValidationError) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return email, valueobjects.Phone{}, &domainerrors.ValidationError{
			Field: "email", Rule: domainerrors.RuleInvalidEmail, MessageID: "validation.email",
		}
	}
	phone, err := valueobjects.NewPhone(input.Phone)
	if err != nil {
		return email, phone, &domainerrors.ValidationError{
			Field: "phone", Rule: domainerrors.RuleInvalidPhone, MessageID: "validation.phone",
		}
	}
	return email, phone, nil
}

func readPhoto(photo *validation.PhotoUpload) ([]byte, error) {
	if photo.Open == nil {
		return nil, domainerrors.Wrap(domainerrors.ErrImageProcessing, "open photo", fmt.Errorf("no reader"))
	}
	f, err := photo.Open()
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrImageProcessing, "open photo", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, validation.MaxPhotoSize+1))
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrImageProcessing, "read photo", err)
	}
	return raw, nil
}

func (s *RegistrationService) transition(log ports.Logger, state RegistrationState) {
	log.Debug("registration state", "state", state)
}

func (s *RegistrationService) reject(log ports.Logger, reason error, outcome string) error {
	s.transition(log.With("reason", reason.Error()), StateRejected)
	s.observe(outcome)
	return reason
}

// fail normaliza a causa: prazo estourado vira ErrTimeout, o resto mantém o tipo
func (s *RegistrationService) fail(ctx context.Context, log ports.Logger, cause error) error {
	err := cause
	outcome := ports.OutcomeFailed
	if errors.Is(cause, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		outcome = ports.OutcomeTimeout
		if !errors.Is(cause, domainerrors.ErrTimeout) {
			err = domainerrors.Wrap(domainerrors.ErrTimeout, "register", cause)
		}
	}
	log.Error("registration failed", "state", StateFailed, "error", cause)
	s.observe(outcome)
	return err
}

func (s *RegistrationService) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveRegistration(outcome)
	}
}
