package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
)

// TimeLogFilter narrows a time log listing.
type TimeLogFilter struct {
	JobID      string
	EmployeeID string
	From       *time.Time
	To         *time.Time
	Page       Page
}

// TimeLogReader defines read operations for time logs
type TimeLogReader interface {
	FindTimeLogByID(ctx context.Context, timeLogID string) (*domain.TimeLog, error)

	// FindActiveTimeLog returns the employee's open log or ErrNotFound.
	FindActiveTimeLog(ctx context.Context, employeeID string) (*domain.TimeLog, error)

	ListTimeLogs(ctx context.Context, companyID string, filter TimeLogFilter) ([]domain.TimeLog, error)

	// ListTimeLogsByJob returns every log of a job, open or closed, oldest first.
	ListTimeLogsByJob(ctx context.Context, jobID string) ([]domain.TimeLog, error)
}

// TimeLogWriter defines write operations for time logs. Writes that affect a
// closed log rebuild line item and job actuals in the same transaction.
type TimeLogWriter interface {
	// StartTimeLog inserts an open log. A second open log for the same
	// employee fails with ErrValidation.
	StartTimeLog(ctx context.Context, log domain.TimeLog) error

	// StopTimeLog closes an open log with its captured rates and cost.
	// It fails with ErrValidation if the log was already closed.
	StopTimeLog(ctx context.Context, log domain.TimeLog) error

	// SaveTimeLog inserts a closed log entered after the fact.
	SaveTimeLog(ctx context.Context, log domain.TimeLog) error

	// UpdateTimeLog rewrites a log's times, line item, notes and cost.
	UpdateTimeLog(ctx context.Context, log domain.TimeLog) error

	DeleteTimeLog(ctx context.Context, log domain.TimeLog) error
}

// TimeLogRepositoryFacade combines all time-log-related repository interfaces
type TimeLogRepositoryFacade interface {
	TimeLogReader
	TimeLogWriter
}
