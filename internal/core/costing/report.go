package costing

import (
	"sort"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportInput is the state of a completed job at snapshot time.
type ReportInput struct {
	Job       domain.Job
	Customer  *domain.Customer
	LineItems []domain.JobLineItem
	TimeLogs  []domain.TimeLog
	Employees map[string]domain.Employee
}

// BuildProjectReport copies the job's current figures into a snapshot.
// Open time logs are left out. Employee groups keep the order in which each
// employee first logged time.
func BuildProjectReport(in ReportInput, reportID, userID string, now time.Time) domain.ProjectReport {
	job := in.Job
	r := domain.ProjectReport{
		ReportID:              reportID,
		CompanyID:             job.CompanyID,
		JobID:                 job.JobID,
		JobNumber:             job.JobNumber,
		JobTitle:              job.Title,
		CustomerID:            job.CustomerID,
		Revenue:               job.TotalInvestment,
		TotalCost:             job.ActualTotalCost,
		EstimatedHours:        job.EstimatedTotalHours,
		ActualProductiveHours: job.ActualProductiveHours,
		ActualSupportHours:    job.ActualSupportHours,
		ActualTotalHours:      job.ActualProductiveHours.Add(job.ActualSupportHours),
		LineItems:             make([]domain.ReportLineItem, 0, len(in.LineItems)),
		EmployeeLogs:          []domain.ReportEmployeeLogs{},
		Crew:                  []domain.ReportCrewMember{},
		GeneratedAt:           now,
		GeneratedBy:           userID,
	}
	if job.CompletedAt != nil {
		r.CompletedAt = *job.CompletedAt
	} else {
		r.CompletedAt = now
	}
	if in.Customer != nil {
		r.CustomerName = in.Customer.DisplayName()
	}
	r.Profit, r.ProfitMargin = ProfitAndMargin(r.Revenue, r.TotalCost)

	items := append([]domain.JobLineItem(nil), in.LineItems...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })
	for _, li := range items {
		r.LineItems = append(r.LineItems, domain.ReportLineItem{
			LineItemID:     li.LineItemID,
			DisplayName:    li.DisplayName,
			ServiceType:    li.ServiceType,
			IsBillable:     li.IsBillable,
			SortOrder:      li.SortOrder,
			EstimatedHours: li.EstimatedHours,
			ActualHours:    li.ActualProductiveHours,
			VarianceHours:  li.VarianceHours,
			TotalCost:      li.TotalCost,
			LineItemTotal:  li.LineItemTotal,
		})
	}

	groups := make(map[string]int)
	for _, log := range in.TimeLogs {
		if log.IsActive() {
			continue
		}
		idx, ok := groups[log.EmployeeID]
		if !ok {
			emp := in.Employees[log.EmployeeID]
			idx = len(r.EmployeeLogs)
			groups[log.EmployeeID] = idx
			r.EmployeeLogs = append(r.EmployeeLogs, domain.ReportEmployeeLogs{
				EmployeeID:   log.EmployeeID,
				EmployeeName: emp.FullName(),
				TotalHours:   decimal.Zero,
				TotalCost:    decimal.Zero,
				Entries:      []domain.ReportTimeEntry{},
			})
			r.Crew = append(r.Crew, domain.ReportCrewMember{
				EmployeeID:    log.EmployeeID,
				Name:          emp.FullName(),
				Position:      emp.Position,
				EffectiveRate: emp.EffectiveRate,
			})
		}
		g := &r.EmployeeLogs[idx]
		g.TotalHours = g.TotalHours.Add(log.DurationHours)
		g.TotalCost = g.TotalCost.Add(log.TotalCost)
		g.Entries = append(g.Entries, domain.ReportTimeEntry{
			TimeLogID:     log.TimeLogID,
			LineItemID:    log.LineItemID,
			StartTime:     log.StartTime,
			EndTime:       *log.EndTime,
			DurationHours: log.DurationHours,
			EmployeeRate:  log.EmployeeRate,
			EquipmentCost: log.EquipmentCost,
			TotalCost:     log.TotalCost,
		})
	}
	return r
}
