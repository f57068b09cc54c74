package dto

import (
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StartTimerRequest starts a running timer for an employee on a job.
type StartTimerRequest struct {
	JobID        string   `json:"jobID" binding:"required"`
	EmployeeID   string   `json:"employeeID" binding:"required"`
	LineItemID   *string  `json:"lineItemID"`
	EquipmentIDs []string `json:"equipmentIDs" binding:"dive,required"`
	Notes        string   `json:"notes"`
}

// StopTimerRequest closes a running timer. EndTime defaults to now.
type StopTimerRequest struct {
	EndTime *time.Time `json:"endTime"`
	Notes   *string    `json:"notes"`
}

// CreateTimeLogRequest records a closed time entry after the fact.
type CreateTimeLogRequest struct {
	JobID        string    `json:"jobID" binding:"required"`
	EmployeeID   string    `json:"employeeID" binding:"required"`
	LineItemID   *string   `json:"lineItemID"`
	EquipmentIDs []string  `json:"equipmentIDs" binding:"dive,required"`
	StartTime    time.Time `json:"startTime" binding:"required"`
	EndTime      time.Time `json:"endTime" binding:"required,gtfield=StartTime"`
	Notes        string    `json:"notes"`
}

// UpdateTimeLogRequest adjusts a closed time entry. Cost is recomputed from
// the rates captured when the entry was closed.
type UpdateTimeLogRequest struct {
	LineItemID *string    `json:"lineItemID"`
	StartTime  *time.Time `json:"startTime"`
	EndTime    *time.Time `json:"endTime"`
	Notes      *string    `json:"notes"`
}

// ListTimeLogsParams defines query parameters for listing time logs.
type ListTimeLogsParams struct {
	ListParams
	JobID      string     `form:"jobID"`
	EmployeeID string     `form:"employeeID"`
	From       *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To         *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// TimeLogResponse defines the data returned for a time log.
type TimeLogResponse struct {
	TimeLogID     string          `json:"timeLogID"`
	JobID         string          `json:"jobID"`
	LineItemID    string          `json:"lineItemID,omitempty"`
	EmployeeID    string          `json:"employeeID"`
	EquipmentIDs  []string        `json:"equipmentIDs"`
	StartTime     time.Time       `json:"startTime"`
	EndTime       *time.Time      `json:"endTime,omitempty"`
	IsActive      bool            `json:"isActive"`
	EmployeeRate  decimal.Decimal `json:"employeeRate"`
	EquipmentCost decimal.Decimal `json:"equipmentCost"`
	DurationHours decimal.Decimal `json:"durationHours"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	Notes         string          `json:"notes"`
	CreatedBy     string          `json:"createdBy"`
}

// ToTimeLogResponse converts a domain.TimeLog to TimeLogResponse DTO
func ToTimeLogResponse(t *domain.TimeLog) TimeLogResponse {
	return TimeLogResponse{
		TimeLogID:     t.TimeLogID,
		JobID:         t.JobID,
		LineItemID:    t.LineItemID,
		EmployeeID:    t.EmployeeID,
		EquipmentIDs:  nonNil(t.EquipmentIDs),
		StartTime:     t.StartTime,
		EndTime:       t.EndTime,
		IsActive:      t.IsActive(),
		EmployeeRate:  t.EmployeeRate,
		EquipmentCost: t.EquipmentCost,
		DurationHours: t.DurationHours,
		TotalCost:     t.TotalCost,
		Notes:         t.Notes,
		CreatedBy:     t.CreatedBy,
	}
}

// ToListTimeLogResponse converts a slice of domain.TimeLog to a slice of TimeLogResponse DTOs
func ToListTimeLogResponse(logs []domain.TimeLog) []TimeLogResponse {
	res := make([]TimeLogResponse, len(logs))
	for i := range logs {
		res[i] = ToTimeLogResponse(&logs[i])
	}
	return res
}
