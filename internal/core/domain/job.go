package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// JobStatus is the operational workflow state of a job.
type JobStatus string

const (
	JobDraft      JobStatus = "draft"
	JobSent       JobStatus = "sent"
	JobAccepted   JobStatus = "accepted"
	JobScheduled  JobStatus = "scheduled"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobCancelled  JobStatus = "cancelled"
)

// jobStatusOrder is the forward path a job follows. Cancelled sits outside it.
var jobStatusOrder = map[JobStatus]int{
	JobDraft:      0,
	JobSent:       1,
	JobAccepted:   2,
	JobScheduled:  3,
	JobInProgress: 4,
	JobCompleted:  5,
}

// AllJobStatuses lists every status in workflow order.
var AllJobStatuses = []JobStatus{JobDraft, JobSent, JobAccepted, JobScheduled, JobInProgress, JobCompleted, JobCancelled}

// IsValid reports whether s is a known job status.
func (s JobStatus) IsValid() bool {
	_, ok := jobStatusOrder[s]
	return ok || s == JobCancelled
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s JobStatus) IsTerminal() bool {
	return s == JobCompleted || s == JobCancelled
}

// CanTransition reports whether a job may move from one status to another.
// Moves go forward only (skipping ahead is allowed); cancelled is reachable
// from every non-terminal status.
func CanTransition(from, to JobStatus) bool {
	if !from.IsValid() || !to.IsValid() || from.IsTerminal() || from == to {
		return false
	}
	if to == JobCancelled {
		return true
	}
	return jobStatusOrder[to] > jobStatusOrder[from]
}

// LifecycleStage is the display label derived from a job's status.
type LifecycleStage string

const (
	StageLead      LifecycleStage = "lead"
	StageProposal  LifecycleStage = "proposal"
	StageWorkOrder LifecycleStage = "work_order"
	StageInvoice   LifecycleStage = "invoice"
	StageComplete  LifecycleStage = "complete"
)

// StageForStatus is the single mapping from workflow status to display stage.
func StageForStatus(status JobStatus, paid bool) LifecycleStage {
	switch status {
	case JobDraft:
		return StageLead
	case JobSent:
		return StageProposal
	case JobAccepted, JobScheduled, JobInProgress:
		return StageWorkOrder
	case JobCompleted:
		if paid {
			return StageComplete
		}
		return StageInvoice
	case JobCancelled:
		return StageComplete
	}
	return StageLead
}

// Prefix is the job-number prefix shown for the stage.
func (s LifecycleStage) Prefix() string {
	switch s {
	case StageLead:
		return "LEAD"
	case StageProposal:
		return "PROP"
	case StageInvoice:
		return "INV"
	case StageComplete:
		return "DONE"
	}
	return "WO"
}

// JobNumberPrefix is the prefix of the persisted job number.
const JobNumberPrefix = "WO"

// FormatJobNumber renders a per-organization sequence as WO-0001.
func FormatJobNumber(seq int) string {
	return fmt.Sprintf("%s-%04d", JobNumberPrefix, seq)
}

// Job is a work order for one customer.
type Job struct {
	JobID                 string          `json:"jobID"`
	CompanyID             string          `json:"companyID"`
	CustomerID            string          `json:"customerID"`
	Sequence              int             `json:"sequence"`
	JobNumber             string          `json:"jobNumber"`
	Title                 string          `json:"title"`
	Description           string          `json:"description"`
	SiteAddress           string          `json:"siteAddress"`
	Status                JobStatus       `json:"status"`
	ScheduledStart        *time.Time      `json:"scheduledStart,omitempty"`
	ScheduledEnd          *time.Time      `json:"scheduledEnd,omitempty"`
	CompletedAt           *time.Time      `json:"completedAt,omitempty"`
	PaidAt                *time.Time      `json:"paidAt,omitempty"`
	EstimatedTotalHours   decimal.Decimal `json:"estimatedTotalHours"`
	TotalInvestment       decimal.Decimal `json:"totalInvestment"`
	ActualProductiveHours decimal.Decimal `json:"actualProductiveHours"`
	ActualSupportHours    decimal.Decimal `json:"actualSupportHours"`
	ActualTotalCost       decimal.Decimal `json:"actualTotalCost"`
	LineItems             []JobLineItem   `json:"lineItems,omitempty"`
	AuditFields
}

// LifecycleStage derives the display stage from the workflow status.
func (j Job) LifecycleStage() LifecycleStage {
	return StageForStatus(j.Status, j.PaidAt != nil)
}

// DisplayNumber is the job number with the prefix of its current stage.
func (j Job) DisplayNumber() string {
	return fmt.Sprintf("%s-%04d", j.LifecycleStage().Prefix(), j.Sequence)
}

// AcceptsTime reports whether time can still be logged against the job.
func (j Job) AcceptsTime() bool {
	return !j.Status.IsTerminal()
}
