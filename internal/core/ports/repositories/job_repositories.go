package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
)

// JobFilter narrows a job listing. The cursor fields come from a decoded
// pagination token and select rows strictly after that position.
type JobFilter struct {
	Status         domain.JobStatus
	CustomerID     string
	Limit          int
	AfterCreatedAt *time.Time
	AfterJobID     string
}

// JobReader defines read operations for job data
type JobReader interface {
	// FindJobByID retrieves a job without its line items.
	FindJobByID(ctx context.Context, jobID string) (*domain.Job, error)

	// ListJobs retrieves an organization's jobs newest first.
	ListJobs(ctx context.Context, companyID string, filter JobFilter) ([]domain.Job, error)

	// CountTimeLogsForJob counts time logs recorded against the job.
	CountTimeLogsForJob(ctx context.Context, jobID string) (int, error)

	// CountActiveTimeLogsForJob counts time logs on the job whose timer is still running.
	CountActiveTimeLogsForJob(ctx context.Context, jobID string) (int, error)
}

// JobWriter defines write operations for job data
type JobWriter interface {
	// CreateJob assigns the next per-organization job number, inserts the job
	// and seeds its phase line items in one transaction. Sequence and JobNumber
	// are written back onto job.
	CreateJob(ctx context.Context, job *domain.Job, phases []domain.JobLineItem) error

	// UpdateJob updates descriptive fields (title, customer, site, schedule).
	UpdateJob(ctx context.Context, job domain.Job) error

	// UpdateJobStatus moves a job from status from to a non-completed status.
	// It returns ErrValidation when the stored status is no longer from.
	UpdateJobStatus(ctx context.Context, jobID string, from, to domain.JobStatus, userID string, now time.Time) error

	// CompleteJob marks the job and all of its line items completed and stamps
	// completedAt. It returns ErrValidation when the stored status is no longer
	// from or a timer is still running on the job.
	CompleteJob(ctx context.Context, jobID string, from domain.JobStatus, userID string, now time.Time) error

	// MarkJobPaid stamps paidAt.
	MarkJobPaid(ctx context.Context, jobID string, userID string, now time.Time) error

	// DeleteJob removes the job and its line items.
	DeleteJob(ctx context.Context, jobID string) error
}

// JobRepositoryFacade combines all job-related repository interfaces
type JobRepositoryFacade interface {
	JobReader
	JobWriter
}
