package services

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/dto"
)

// JobReaderSvc defines read operations for jobs
type JobReaderSvc interface {
	// GetJobByID retrieves a job together with its line items.
	GetJobByID(ctx context.Context, companyID string, jobID string) (*domain.Job, error)

	// ListJobs retrieves a page of jobs newest first.
	ListJobs(ctx context.Context, companyID string, params dto.ListJobsParams) (*dto.ListJobsResponse, error)
}

// JobWriterSvc defines write operations for jobs
type JobWriterSvc interface {
	// CreateJob numbers the job and seeds its phase line items.
	CreateJob(ctx context.Context, companyID string, req dto.CreateJobRequest, userID string) (*domain.Job, error)
	UpdateJob(ctx context.Context, companyID string, jobID string, req dto.UpdateJobRequest, userID string) (*domain.Job, error)

	// DeleteJob removes a draft or cancelled job that has no time logged.
	DeleteJob(ctx context.Context, companyID string, jobID string, userID string) error
}

// JobWorkflowSvc defines the status machine of a job
type JobWorkflowSvc interface {
	// TransitionStatus moves a job forward or cancels it. Completing a job
	// completes its line items and generates the project report.
	TransitionStatus(ctx context.Context, companyID string, jobID string, status domain.JobStatus, userID string) (*domain.Job, error)

	// MarkJobPaid records payment of a completed job.
	MarkJobPaid(ctx context.Context, companyID string, jobID string, userID string) (*domain.Job, error)
}

// JobSvcFacade combines all job-related service interfaces
type JobSvcFacade interface {
	JobReaderSvc
	JobWriterSvc
	JobWorkflowSvc
}
