package domain

import "time"

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusAborted   RunStatus = "aborted"
	RunStatusFailed    RunStatus = "failed"
)

// StageReport counts per-vendor outcomes for one batch stage.
type StageReport struct {
	Succeeded int `json:"succeeded"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// RunReport is the user-visible result of one batch run. The batch always
// completes and reports; it never raises to its caller.
type RunReport struct {
	ID               string                            `json:"id"`
	Status           RunStatus                         `json:"status"`
	StartedAt        time.Time                         `json:"started_at"`
	CompletedAt      *time.Time                        `json:"completed_at,omitempty"`
	Identity         StageReport                       `json:"identity"`
	Documents        StageReport                       `json:"documents"`
	BankInfo         StageReport                       `json:"bank_info"`
	Outcomes         map[int64]DocumentTransferOutcome `json:"document_outcomes,omitempty"`
	TransferFailures []TransferFailure                 `json:"transfer_failures,omitempty"`
	CriticalErrors   []string                          `json:"critical_errors,omitempty"`
	AbortReason      string                            `json:"abort_reason,omitempty"`
}

func NewRunReport(id string) *RunReport {
	return &RunReport{
		ID:        id,
		Status:    RunStatusRunning,
		StartedAt: time.Now(),
	}
}

func (r *RunReport) Clone() *RunReport {
	c := *r
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		c.CompletedAt = &t
	}
	if r.Outcomes != nil {
		c.Outcomes = make(map[int64]DocumentTransferOutcome, len(r.Outcomes))
		for k, v := range r.Outcomes {
			c.Outcomes[k] = v
		}
	}
	c.TransferFailures = append([]TransferFailure(nil), r.TransferFailures...)
	c.CriticalErrors = append([]string(nil), r.CriticalErrors...)
	return &c
}

func (r *RunReport) Finish(status RunStatus) {
	now := time.Now()
	r.Status = status
	r.CompletedAt = &now
}
