package dto

import (
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemResources selects who and what performs a billable item: either a
// loadout or an explicit set of employees and machines.
type LineItemResources struct {
	LoadoutID    *string  `json:"loadoutID"`
	EmployeeIDs  []string `json:"employeeIDs" binding:"dive,required"`
	EquipmentIDs []string `json:"equipmentIDs" binding:"dive,required"`
}

// AddLineItemRequest defines a billable item to price and add to a job.
type AddLineItemRequest struct {
	ServiceType      string           `json:"serviceType" binding:"required,max=100"`
	DisplayName      string           `json:"displayName" binding:"max=200"`
	Quantity         decimal.Decimal  `json:"quantity" binding:"gt=0"`
	DifficultyFactor decimal.Decimal  `json:"difficultyFactor" binding:"gte=0"`
	ProductionRate   *decimal.Decimal `json:"productionRate" binding:"omitempty,gt=0"`
	MarginPercent    decimal.Decimal  `json:"marginPercent" binding:"gte=0"`
	SortOrder        *int             `json:"sortOrder" binding:"omitempty,gte=3,lte=97"`
	LineItemResources
}

// UpdateLineItemRequest changes scope, resources or progress of a line item.
// Pricing fields are ignored for phase items.
type UpdateLineItemRequest struct {
	DisplayName      *string                `json:"displayName" binding:"omitempty,max=200"`
	Quantity         *decimal.Decimal       `json:"quantity" binding:"omitempty,gt=0"`
	DifficultyFactor *decimal.Decimal       `json:"difficultyFactor" binding:"omitempty,gte=0"`
	ProductionRate   *decimal.Decimal       `json:"productionRate" binding:"omitempty,gt=0"`
	MarginPercent    *decimal.Decimal       `json:"marginPercent" binding:"omitempty,gte=0"`
	SortOrder        *int                   `json:"sortOrder" binding:"omitempty,gte=3,lte=97"`
	Status           *domain.LineItemStatus `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	LoadoutID        *string                `json:"loadoutID"`
	EmployeeIDs      *[]string              `json:"employeeIDs"`
	EquipmentIDs     *[]string              `json:"equipmentIDs"`
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	LineItemID            string                `json:"lineItemID"`
	JobID                 string                `json:"jobID"`
	IsBillable            bool                  `json:"isBillable"`
	ServiceType           string                `json:"serviceType"`
	DisplayName           string                `json:"displayName"`
	SortOrder             int                   `json:"sortOrder"`
	Quantity              decimal.Decimal       `json:"quantity"`
	DifficultyFactor      decimal.Decimal       `json:"difficultyFactor"`
	Score                 decimal.Decimal       `json:"score"`
	ProductionRate        decimal.Decimal       `json:"productionRate"`
	LoadoutID             string                `json:"loadoutID,omitempty"`
	EmployeeIDs           []string              `json:"employeeIDs"`
	EquipmentIDs          []string              `json:"equipmentIDs"`
	TotalCostPerHour      decimal.Decimal       `json:"totalCostPerHour"`
	MarginPercent         decimal.Decimal       `json:"marginPercent"`
	BillingRate           decimal.Decimal       `json:"billingRate"`
	EstimatedHours        decimal.Decimal       `json:"estimatedHours"`
	TotalCost             decimal.Decimal       `json:"totalCost"`
	LineItemTotal         decimal.Decimal       `json:"lineItemTotal"`
	Status                domain.LineItemStatus `json:"status"`
	ActualProductiveHours decimal.Decimal       `json:"actualProductiveHours"`
	VarianceHours         decimal.Decimal       `json:"varianceHours"`
	LastUpdatedAt         time.Time             `json:"lastUpdatedAt"`
}

// ToLineItemResponse converts a domain.JobLineItem to LineItemResponse DTO
func ToLineItemResponse(li *domain.JobLineItem) LineItemResponse {
	return LineItemResponse{
		LineItemID:            li.LineItemID,
		JobID:                 li.JobID,
		IsBillable:            li.IsBillable,
		ServiceType:           li.ServiceType,
		DisplayName:           li.DisplayName,
		SortOrder:             li.SortOrder,
		Quantity:              li.Quantity,
		DifficultyFactor:      li.DifficultyFactor,
		Score:                 li.Score,
		ProductionRate:        li.ProductionRate,
		LoadoutID:             li.LoadoutID,
		EmployeeIDs:           nonNil(li.EmployeeIDs),
		EquipmentIDs:          nonNil(li.EquipmentIDs),
		TotalCostPerHour:      li.TotalCostPerHour,
		MarginPercent:         li.MarginPercent,
		BillingRate:           li.BillingRate,
		EstimatedHours:        li.EstimatedHours,
		TotalCost:             li.TotalCost,
		LineItemTotal:         li.LineItemTotal,
		Status:                li.Status,
		ActualProductiveHours: li.ActualProductiveHours,
		VarianceHours:         li.VarianceHours,
		LastUpdatedAt:         li.LastUpdatedAt,
	}
}

// ToListLineItemResponse converts a slice of domain.JobLineItem to a slice of LineItemResponse DTOs
func ToListLineItemResponse(items []domain.JobLineItem) []LineItemResponse {
	res := make([]LineItemResponse, len(items))
	for i := range items {
		res[i] = ToLineItemResponse(&items[i])
	}
	return res
}
