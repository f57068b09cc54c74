package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/models"
)

// ToModelProjectReport converts a domain ProjectReport to a model ProjectReport,
// encoding the nested records as JSON.
func ToModelProjectReport(d domain.ProjectReport) (models.ProjectReport, error) {
	lineItems, err := marshalList(d.LineItems)
	if err != nil {
		return models.ProjectReport{}, fmt.Errorf("failed to encode report line items: %w", err)
	}
	employeeLogs, err := marshalList(d.EmployeeLogs)
	if err != nil {
		return models.ProjectReport{}, fmt.Errorf("failed to encode report employee logs: %w", err)
	}
	crew, err := marshalList(d.Crew)
	if err != nil {
		return models.ProjectReport{}, fmt.Errorf("failed to encode report crew: %w", err)
	}

	return models.ProjectReport{
		ReportID:              d.ReportID,
		CompanyID:             d.CompanyID,
		JobID:                 d.JobID,
		JobNumber:             d.JobNumber,
		JobTitle:              d.JobTitle,
		CustomerID:            d.CustomerID,
		CustomerName:          d.CustomerName,
		CompletedAt:           d.CompletedAt,
		LineItems:             lineItems,
		EmployeeLogs:          employeeLogs,
		Crew:                  crew,
		Revenue:               d.Revenue,
		TotalCost:             d.TotalCost,
		Profit:                d.Profit,
		ProfitMargin:          d.ProfitMargin,
		EstimatedHours:        d.EstimatedHours,
		ActualProductiveHours: d.ActualProductiveHours,
		ActualSupportHours:    d.ActualSupportHours,
		ActualTotalHours:      d.ActualTotalHours,
		GeneratedAt:           d.GeneratedAt,
		GeneratedBy:           d.GeneratedBy,
	}, nil
}

// ToDomainProjectReport converts a model ProjectReport to a domain ProjectReport
func ToDomainProjectReport(m models.ProjectReport) (domain.ProjectReport, error) {
	d := domain.ProjectReport{
		ReportID:              m.ReportID,
		CompanyID:             m.CompanyID,
		JobID:                 m.JobID,
		JobNumber:             m.JobNumber,
		JobTitle:              m.JobTitle,
		CustomerID:            m.CustomerID,
		CustomerName:          m.CustomerName,
		CompletedAt:           m.CompletedAt,
		Revenue:               m.Revenue,
		TotalCost:             m.TotalCost,
		Profit:                m.Profit,
		ProfitMargin:          m.ProfitMargin,
		EstimatedHours:        m.EstimatedHours,
		ActualProductiveHours: m.ActualProductiveHours,
		ActualSupportHours:    m.ActualSupportHours,
		ActualTotalHours:      m.ActualTotalHours,
		GeneratedAt:           m.GeneratedAt,
		GeneratedBy:           m.GeneratedBy,
	}
	if err := unmarshalList(m.LineItems, &d.LineItems); err != nil {
		return domain.ProjectReport{}, fmt.Errorf("failed to decode line items of report %s: %w", m.ReportID, err)
	}
	if err := unmarshalList(m.EmployeeLogs, &d.EmployeeLogs); err != nil {
		return domain.ProjectReport{}, fmt.Errorf("failed to decode employee logs of report %s: %w", m.ReportID, err)
	}
	if err := unmarshalList(m.Crew, &d.Crew); err != nil {
		return domain.ProjectReport{}, fmt.Errorf("failed to decode crew of report %s: %w", m.ReportID, err)
	}
	return d, nil
}

func marshalList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

func unmarshalList[T any](raw []byte, dst *[]T) error {
	*dst = []T{}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
