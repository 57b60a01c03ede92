package usecase

import (
	"context"

	"addresssync/internal/domain/entity"
)

// RetirementOutcome is the per-descriptor diagnostic of a retirement repair.
type RetirementOutcome struct {
	Change entity.AddressChange
	Result entity.RetirementResult
	// Err is set when Result is failed.
	Err error
	// Notification is the report of the notification step, which runs for every result.
	Notification *NotificationReport
	// NotificationErr is set when the notification step could not look up links.
	NotificationErr error
}

// SweepReport carries one outcome per processed descriptor, in input order.
type SweepReport struct {
	Outcomes []RetirementOutcome
}

// SweepCounts is the aggregate acknowledgment of a sweep.
type SweepCounts struct {
	Processed int `json:"processed"`
	Repaired  int `json:"repaired"`
	Gaps      int `json:"gaps"`
	Failed    int `json:"failed"`
}

// Counts aggregates the outcomes.
func (r *SweepReport) Counts() SweepCounts {
	counts := SweepCounts{Processed: len(r.Outcomes)}
	for _, outcome := range r.Outcomes {
		switch {
		case outcome.Result == entity.RetirementRepaired:
			counts.Repaired++
		case outcome.Result.IsGap():
			counts.Gaps++
		default:
			counts.Failed++
		}
	}

	return counts
}

// RetirementUsecase repairs records whose address was superseded.
type RetirementUsecase interface {
	// DetectAndRepair re-points the target record onto the record matching the
	// new address text, then forwards the descriptor to notification. It never fails;
	// faults are recorded in the outcome.
	DetectAndRepair(ctx context.Context, change entity.AddressChange) RetirementOutcome

	// SweepRetiredAddresses runs DetectAndRepair over candidates, or over the
	// RetirementSource when candidates is nil. Only a source failure is returned as an error.
	SweepRetiredAddresses(ctx context.Context, candidates []entity.AddressChange) (*SweepReport, error)
}
