package dto

import (
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJobRequest defines the data needed to open a job for a customer.
type CreateJobRequest struct {
	CustomerID     string     `json:"customerID" binding:"required"`
	Title          string     `json:"title" binding:"required,max=200"`
	Description    string     `json:"description"`
	SiteAddress    string     `json:"siteAddress"`
	ScheduledStart *time.Time `json:"scheduledStart"`
	ScheduledEnd   *time.Time `json:"scheduledEnd"`
}

// UpdateJobRequest defines the descriptive fields of a job that can be edited.
// Status changes go through UpdateJobStatusRequest.
type UpdateJobRequest struct {
	CustomerID     *string    `json:"customerID" binding:"omitempty,min=1"`
	Title          *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description    *string    `json:"description"`
	SiteAddress    *string    `json:"siteAddress"`
	ScheduledStart *time.Time `json:"scheduledStart"`
	ScheduledEnd   *time.Time `json:"scheduledEnd"`
}

// UpdateJobStatusRequest moves a job through its workflow.
type UpdateJobStatusRequest struct {
	Status domain.JobStatus `json:"status" binding:"required"`
}

// ListJobsParams defines query parameters for listing jobs.
type ListJobsParams struct {
	Limit      int              `form:"limit,default=20" binding:"gte=1,lte=100"`
	NextToken  string           `form:"nextToken"`
	Status     domain.JobStatus `form:"status"`
	CustomerID string           `form:"customerID"`
}

// JobResponse defines the data returned for a job.
type JobResponse struct {
	JobID                 string                `json:"jobID"`
	CustomerID            string                `json:"customerID"`
	JobNumber             string                `json:"jobNumber"`
	DisplayNumber         string                `json:"displayNumber"`
	Title                 string                `json:"title"`
	Description           string                `json:"description"`
	SiteAddress           string                `json:"siteAddress"`
	Status                domain.JobStatus      `json:"status"`
	LifecycleStage        domain.LifecycleStage `json:"lifecycleStage"`
	ScheduledStart        *time.Time            `json:"scheduledStart,omitempty"`
	ScheduledEnd          *time.Time            `json:"scheduledEnd,omitempty"`
	CompletedAt           *time.Time            `json:"completedAt,omitempty"`
	PaidAt                *time.Time            `json:"paidAt,omitempty"`
	EstimatedTotalHours   decimal.Decimal       `json:"estimatedTotalHours"`
	TotalInvestment       decimal.Decimal       `json:"totalInvestment"`
	ActualProductiveHours decimal.Decimal       `json:"actualProductiveHours"`
	ActualSupportHours    decimal.Decimal       `json:"actualSupportHours"`
	ActualTotalCost       decimal.Decimal       `json:"actualTotalCost"`
	LineItems             []LineItemResponse    `json:"lineItems,omitempty"`
	CreatedAt             time.Time             `json:"createdAt"`
	CreatedBy             string                `json:"createdBy"`
	LastUpdatedAt         time.Time             `json:"lastUpdatedAt"`
}

// ListJobsResponse is a page of jobs and the token for the next page.
type ListJobsResponse struct {
	Jobs      []JobResponse `json:"jobs"`
	NextToken string        `json:"nextToken,omitempty"`
}

// ToJobResponse converts a domain.Job to JobResponse DTO
func ToJobResponse(j *domain.Job) JobResponse {
	res := JobResponse{
		JobID:                 j.JobID,
		CustomerID:            j.CustomerID,
		JobNumber:             j.JobNumber,
		DisplayNumber:         j.DisplayNumber(),
		Title:                 j.Title,
		Description:           j.Description,
		SiteAddress:           j.SiteAddress,
		Status:                j.Status,
		LifecycleStage:        j.LifecycleStage(),
		ScheduledStart:        j.ScheduledStart,
		ScheduledEnd:          j.ScheduledEnd,
		CompletedAt:           j.CompletedAt,
		PaidAt:                j.PaidAt,
		EstimatedTotalHours:   j.EstimatedTotalHours,
		TotalInvestment:       j.TotalInvestment,
		ActualProductiveHours: j.ActualProductiveHours,
		ActualSupportHours:    j.ActualSupportHours,
		ActualTotalCost:       j.ActualTotalCost,
		CreatedAt:             j.CreatedAt,
		CreatedBy:             j.CreatedBy,
		LastUpdatedAt:         j.LastUpdatedAt,
	}
	if len(j.LineItems) > 0 {
		res.LineItems = ToListLineItemResponse(j.LineItems)
	}
	return res
}

// ToListJobResponse converts a slice of domain.Job to a slice of JobResponse DTOs
func ToListJobResponse(jobs []domain.Job) []JobResponse {
	res := make([]JobResponse, len(jobs))
	for i := range jobs {
		res[i] = ToJobResponse(&jobs[i])
	}
	return res
}
