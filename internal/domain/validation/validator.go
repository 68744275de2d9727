// Package validation verifica os campos de registro em ordem fixa e
// devolve apenas a primeira falha.
package validation

import (
	"io"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/rafabene/staffdir-backend/internal/domain/errors"
	"github.com/rafabene/staffdir-backend/internal/domain/valueobjects"
)

// MaxPhotoSize é o tamanho máximo aceito para a foto (5 MiB)
const MaxPhotoSize int64 = 5 * 1024 * 1024

// PhotoUpload descreve o arquivo enviado sem carregá-lo em memória
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// RegistrationInput contém os dados submetidos para registrar uma pessoa
type RegistrationInput struct {
	Name     string
	Email    string
	Phone    string
	Position string
	Photo    *PhotoUpload
}

type check struct {
	field     string
	value     any
	tag       string
	rule      errors.Rule
	messageID string
}

// Validator aplica as regras de registro
type Validator struct {
	validate *validator.Validate
}

// New cria um Validator com as validações customizadas registradas
func New() *Validator {
	v := validator.New()

	mustRegister(v, "person_email", func(fl validator.FieldLevel) bool {
		return valueobjects.IsValidEmail(fl.Field().String())
	})
	mustRegister(v, "ua_phone", func(fl validator.FieldLevel) bool {
		return valueobjects.PhonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "position_id", func(fl validator.FieldLevel) bool {
		id, err := strconv.Atoi(fl.Field().String())
		return err == nil && id > 0
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate retorna a primeira regra violada ou nil
func (v *Validator) Validate(in RegistrationInput) *errors.ValidationError {
	checks := []check{
		{"name", in.Name, "min=2,max=60", errors.RuleInvalidName, "validation.name"},
		{"email", in.Email, "required,person_email", errors.RuleInvalidEmail, "validation.email"},
		{"phone", in.Phone, "required,ua_phone", errors.RuleInvalidPhone, "validation.phone"},
		{"position", in.Position, "required,position_id", errors.RuleInvalidPosition, "validation.position"},
	}
	if failure := v.run(checks); failure != nil {
		return failure
	}

	if in.Photo == nil {
		return &errors.ValidationError{Field: "photo", Rule: errors.RuleMissingPhoto, MessageID: "validation.photo_required"}
	}

	return v.run([]check{
		{"photo", in.Photo.ContentType, "startswith=image/jpeg", errors.RuleInvalidPhotoType, "validation.photo_type"},
		{"photo", in.Photo.Size, "lte=" + strconv.FormatInt(MaxPhotoSize, 10), errors.RulePhotoTooLarge, "validation.photo_size"},
	})
}

func (v *Validator) run(checks []check) *errors.ValidationError {
	for _, c := range checks {
		if err := v.validate.Var(c.value, c.tag); err != nil {
			return &errors.ValidationError{Field: c.field, Rule: c.rule, MessageID: c.messageID}
		}
	}
	return nil
}
