package ports

import "time"

// Outcomes de registro usados como label de métricas
const (
	OutcomeRegistered = "registered"
	OutcomeRejected   = "rejected"
	OutcomeConflict   = "conflict"
	OutcomeFailed     = "failed"
	OutcomeTimeout    = "timeout"
)

// Metrics registra observações de negócio
type Metrics interface {
	ObserveRegistration(outcome string)
	ObserveImageProcessing(d time.Duration, err error)
}
