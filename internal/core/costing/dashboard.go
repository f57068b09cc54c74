package costing

import (
	"sort"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
)

var daysPerYear = decimal.NewFromInt(365)

// DashboardInput is everything the aggregator reads for one organization.
// Jobs outside [From, To] by creation time are ignored; a zero bound is open.
type DashboardInput struct {
	From      time.Time
	To        time.Time
	TopN      int
	Jobs      []domain.Job
	TimeLogs  []domain.TimeLog
	Employees []domain.Employee
	Customers []domain.Customer
	Equipment []domain.Equipment
}

// BuildDashboard derives the profitability view. It never mutates its input.
func BuildDashboard(in DashboardInput) domain.Dashboard {
	d := domain.Dashboard{
		TotalRevenue:     decimal.Zero,
		TotalCost:        decimal.Zero,
		TotalHours:       decimal.Zero,
		ProjectsByStatus: make(map[domain.JobStatus]int, len(domain.AllJobStatuses)),
	}
	if !in.From.IsZero() {
		from := in.From
		d.From = &from
	}
	if !in.To.IsZero() {
		to := in.To
		d.To = &to
	}
	for _, s := range domain.AllJobStatuses {
		d.ProjectsByStatus[s] = 0
	}

	matched := make(map[string]domain.Job)
	customerRevenue := make(map[string]decimal.Decimal)
	customerProjects := make(map[string]int)
	for _, job := range in.Jobs {
		if !inRange(job.CreatedAt, in.From, in.To) {
			continue
		}
		matched[job.JobID] = job
		d.TotalProjects++
		d.ProjectsByStatus[job.Status]++
		customerProjects[job.CustomerID]++
		if job.Status == domain.JobCancelled {
			continue
		}
		d.TotalRevenue = d.TotalRevenue.Add(job.TotalInvestment)
		d.TotalCost = d.TotalCost.Add(job.ActualTotalCost)
		customerRevenue[job.CustomerID] = customerRevenue[job.CustomerID].Add(job.TotalInvestment)
	}
	d.Profit, d.ProfitMargin = ProfitAndMargin(d.TotalRevenue, d.TotalCost)

	jobHours := make(map[string]decimal.Decimal)
	employeeJobHours := make(map[string]map[string]decimal.Decimal)
	equipmentHours := make(map[string]decimal.Decimal)
	for _, log := range in.TimeLogs {
		if _, ok := matched[log.JobID]; !ok || log.IsActive() {
			continue
		}
		d.TotalHours = d.TotalHours.Add(log.DurationHours)
		jobHours[log.JobID] = jobHours[log.JobID].Add(log.DurationHours)
		if employeeJobHours[log.EmployeeID] == nil {
			employeeJobHours[log.EmployeeID] = make(map[string]decimal.Decimal)
		}
		employeeJobHours[log.EmployeeID][log.JobID] = employeeJobHours[log.EmployeeID][log.JobID].Add(log.DurationHours)
		for _, eqID := range log.EquipmentIDs {
			equipmentHours[eqID] = equipmentHours[eqID].Add(log.DurationHours)
		}
	}

	d.TopEmployees = topEmployees(in, matched, jobHours, employeeJobHours)
	d.TopCustomers = topCustomers(in, customerRevenue, customerProjects)
	d.EquipmentUtilization = equipmentUtilization(in, equipmentHours)
	return d
}

func inRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}

// topEmployees ranks by hours. Revenue of each non-cancelled job is attributed
// in proportion to the employee's share of the hours logged on it.
func topEmployees(in DashboardInput, matched map[string]domain.Job, jobHours map[string]decimal.Decimal, perEmployee map[string]map[string]decimal.Decimal) []domain.EmployeeMetric {
	metrics := make([]domain.EmployeeMetric, 0, len(perEmployee))
	for _, emp := range in.Employees {
		byJob, ok := perEmployee[emp.EmployeeID]
		if !ok {
			continue
		}
		m := domain.EmployeeMetric{EmployeeID: emp.EmployeeID, Name: emp.FullName(), Hours: decimal.Zero, Revenue: decimal.Zero}
		for jobID, hours := range byJob {
			m.Hours = m.Hours.Add(hours)
			job := matched[jobID]
			total := jobHours[jobID]
			if job.Status == domain.JobCancelled || total.IsZero() {
				continue
			}
			m.Revenue = m.Revenue.Add(job.TotalInvestment.Mul(hours).Div(total))
		}
		metrics = append(metrics, m)
	}
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Hours.GreaterThan(metrics[j].Hours)
	})
	return limit(metrics, in.TopN)
}

func topCustomers(in DashboardInput, revenue map[string]decimal.Decimal, projects map[string]int) []domain.CustomerMetric {
	metrics := make([]domain.CustomerMetric, 0, len(projects))
	for _, c := range in.Customers {
		count, ok := projects[c.CustomerID]
		if !ok {
			continue
		}
		metrics = append(metrics, domain.CustomerMetric{
			CustomerID:   c.CustomerID,
			Name:         c.DisplayName(),
			Revenue:      revenue[c.CustomerID],
			ProjectCount: count,
		})
	}
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Revenue.GreaterThan(metrics[j].Revenue)
	})
	return limit(metrics, in.TopN)
}

// equipmentUtilization compares logged hours with the share of the machine's
// annual operating hours that falls inside the range. Open ranges count as a
// year; a closed range counts at least one day.
func equipmentUtilization(in DashboardInput, hours map[string]decimal.Decimal) []domain.EquipmentMetric {
	days := daysPerYear
	if !in.From.IsZero() && !in.To.IsZero() && !in.To.Before(in.From) {
		days = positiveOr(decimal.NewFromFloat(in.To.Sub(in.From).Hours()/24).Ceil(), one)
	}

	metrics := make([]domain.EquipmentMetric, 0, len(in.Equipment))
	for _, eq := range in.Equipment {
		actual := hours[eq.EquipmentID]
		available := positiveOr(eq.AnnualOperatingHours, one).Mul(days).Div(daysPerYear)
		utilization := actual.Div(available).Mul(hundred)
		if utilization.GreaterThan(hundred) {
			utilization = hundred
		}
		metrics = append(metrics, domain.EquipmentMetric{
			EquipmentID:        eq.EquipmentID,
			Name:               eq.Name,
			ActualHours:        actual,
			AvailableHours:     available,
			UtilizationPercent: utilization,
			CostPerHour:        eq.HourlyCost,
			TotalCost:          eq.HourlyCost.Mul(actual),
		})
	}
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].UtilizationPercent.GreaterThan(metrics[j].UtilizationPercent)
	})
	return metrics
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
