package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrPersonNotFound      = errors.New("error.user_not_found")
	ErrPersonAlreadyExists = errors.New("error.user_already_exists")
	ErrPositionsNotFound   = errors.New("error.positions_not_found")
)

// Infrastructure errors: a causa real fica só nos logs
var (
	ErrImageProcessing = errors.New("error.image_processing")
	ErrStorage         = errors.New("error.storage")
	ErrTimeout         = errors.New("error.timeout")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
//
//nolint:misspell
const (
	ProblemTypeNotFound         = "/problems/not-found"
	ProblemTypeMethodNotAllowed = "/problems/method-not-allowed"
	ProblemTypeInternal         = "/problems/internal-error"
)

// DomainError associa uma causa de infraestrutura a um tipo de falha
type DomainError struct {
	Kind error
	Op   string
	Err  error
}

// Wrap cria um DomainError; retorna nil se err for nil
func Wrap(kind error, op string, err error) error {
	if err == nil {
		return nil
	}
	return &DomainError{Kind: kind, Op: op, Err: err}
}

func (e *DomainError) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap expõe o tipo e a causa para errors.Is/As
func (e *DomainError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Rule identifica a regra de validação que falhou
type Rule string

const (
	RuleInvalidName      Rule = "InvalidName"
	RuleInvalidEmail     Rule = "InvalidEmail"
	RuleInvalidPhone     Rule = "InvalidPhone"
	RuleInvalidPosition  Rule = "InvalidPosition"
	RuleMissingPhoto     Rule = "MissingPhoto"
	RuleInvalidPhotoType Rule = "InvalidPhotoType"
	RulePhotoTooLarge    Rule = "PhotoTooLarge"
	RuleInvalidPage      Rule = "InvalidPage"
	RuleInvalidCount     Rule = "InvalidCount"
)

// ValidationError é uma falha corrigível pelo cliente em um único campo
type ValidationError struct {
	Field     string
	Rule      Rule
	MessageID string
}

func (e *ValidationError) Error() string {
	return "validation failed on " + e.Field + ": " + string(e.Rule)
}
