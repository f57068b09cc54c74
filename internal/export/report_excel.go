// Package export renders stored project reports as downloadable workbooks.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet   = "Summary"
	LineItemsSheet = "Line Items"
	TimeLogsSheet  = "Time Logs"
)

var (
	lineItemHeaders = []string{"#", "Line Item", "Service Type", "Billable", "Est. Hours", "Actual Hours", "Variance", "Cost", "Total"}
	timeLogHeaders  = []string{"Employee", "Start", "End", "Hours", "Employee Rate", "Equipment Cost", "Cost"}
)

// FileName suggests a download name for a report, e.g. "WO-0007-report.xlsx".
func FileName(r domain.ProjectReport) string {
	number := strings.TrimSpace(r.JobNumber)
	if number == "" {
		number = r.JobID
	}
	return number + "-report.xlsx"
}

// ProjectReportXLSX builds a workbook with a summary sheet, the line items
// and every closed time entry of the report.
func ProjectReportXLSX(r domain.ProjectReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	for _, name := range []string{LineItemsSheet, TimeLogsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#2E5E3E"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeSummary(f, r); err != nil {
		return nil, err
	}
	if err := writeLineItems(f, r, headerStyle); err != nil {
		return nil, err
	}
	if err := writeTimeLogs(f, r, headerStyle); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, r domain.ProjectReport) error {
	rows := [][]any{
		{"Job", r.JobNumber},
		{"Title", r.JobTitle},
		{"Customer", r.CustomerName},
		{"Completed", r.CompletedAt.UTC().Format(time.RFC3339)},
		{"Revenue", money(r.Revenue)},
		{"Total Cost", money(r.TotalCost)},
		{"Profit", money(r.Profit)},
		{"Profit Margin %", money(r.ProfitMargin)},
		{"Estimated Hours", money(r.EstimatedHours)},
		{"Productive Hours", money(r.ActualProductiveHours)},
		{"Support Hours", money(r.ActualSupportHours)},
		{"Total Hours", money(r.ActualTotalHours)},
		{"Generated", r.GeneratedAt.UTC().Format(time.RFC3339)},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}
	return f.SetColWidth(SummarySheet, "A", "B", 24)
}

func writeLineItems(f *excelize.File, r domain.ProjectReport, headerStyle int) error {
	if err := writeHeader(f, LineItemsSheet, lineItemHeaders, headerStyle); err != nil {
		return err
	}
	for i, li := range r.LineItems {
		billable := "No"
		if li.IsBillable {
			billable = "Yes"
		}
		row := []any{
			li.SortOrder, li.DisplayName, li.ServiceType, billable,
			money(li.EstimatedHours), money(li.ActualHours), money(li.VarianceHours),
			money(li.TotalCost), money(li.LineItemTotal),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(LineItemsSheet, cell, &row); err != nil {
			return fmt.Errorf("write line item row %d: %w", i+2, err)
		}
	}
	return f.SetColWidth(LineItemsSheet, "B", "C", 28)
}

func writeTimeLogs(f *excelize.File, r domain.ProjectReport, headerStyle int) error {
	if err := writeHeader(f, TimeLogsSheet, timeLogHeaders, headerStyle); err != nil {
		return err
	}
	rowIdx := 2
	for _, group := range r.EmployeeLogs {
		for _, e := range group.Entries {
			row := []any{
				group.EmployeeName,
				e.StartTime.UTC().Format(time.RFC3339),
				e.EndTime.UTC().Format(time.RFC3339),
				money(e.DurationHours), money(e.EmployeeRate), money(e.EquipmentCost), money(e.TotalCost),
			}
			cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
			if err := f.SetSheetRow(TimeLogsSheet, cell, &row); err != nil {
				return fmt.Errorf("write time log row %d: %w", rowIdx, err)
			}
			rowIdx++
		}
	}
	return f.SetColWidth(TimeLogsSheet, "A", "C", 24)
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	return nil
}

// money rounds to cents for display.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
