package services

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/dto"
)

// TimeLogReaderSvc defines read operations for time logs
type TimeLogReaderSvc interface {
	GetTimeLogByID(ctx context.Context, companyID string, timeLogID string) (*domain.TimeLog, error)
	ListTimeLogs(ctx context.Context, companyID string, params dto.ListTimeLogsParams) ([]domain.TimeLog, error)

	// GetActiveTimer returns the employee's running timer or ErrNotFound.
	GetActiveTimer(ctx context.Context, companyID string, employeeID string) (*domain.TimeLog, error)
}

// TimeLogTimerSvc defines the start/stop timer workflow
type TimeLogTimerSvc interface {
	// StartTimer opens a log. An employee can have only one running timer.
	StartTimer(ctx context.Context, companyID string, req dto.StartTimerRequest, userID string) (*domain.TimeLog, error)

	// StopTimer closes a running log and captures the rates in force.
	StopTimer(ctx context.Context, companyID string, timeLogID string, req dto.StopTimerRequest, userID string) (*domain.TimeLog, error)
}

// TimeLogWriterSvc defines manual edits of time logs
type TimeLogWriterSvc interface {
	CreateTimeLog(ctx context.Context, companyID string, req dto.CreateTimeLogRequest, userID string) (*domain.TimeLog, error)
	UpdateTimeLog(ctx context.Context, companyID string, timeLogID string, req dto.UpdateTimeLogRequest, userID string) (*domain.TimeLog, error)
	DeleteTimeLog(ctx context.Context, companyID string, timeLogID string, userID string) error
}

// TimeLogSvcFacade combines all time-log-related service interfaces
type TimeLogSvcFacade interface {
	TimeLogReaderSvc
	TimeLogTimerSvc
	TimeLogWriterSvc
}
