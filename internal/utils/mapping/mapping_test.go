package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItemNullLoadout(t *testing.T) {
	m := mapping.ToModelLineItem(domain.JobLineItem{LineItemID: "li-1"})

	assert.Nil(t, m.LoadoutID)
	assert.Equal(t, []string{}, m.EmployeeIDs)
	assert.Equal(t, "", mapping.ToDomainLineItem(m).LoadoutID)
}

func TestLoadoutProductionRatesJSON(t *testing.T) {
	d := domain.Loadout{
		LoadoutID: "lo-1",
		ProductionRates: []domain.ProductionRate{
			{ServiceType: "removal", Rate: decimal.RequireFromString("2.5"), Unit: domain.UnitPoints},
		},
	}

	m, err := mapping.ToModelLoadout(d)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"serviceType":"removal","rate":"2.5","unit":"points"}]`, string(m.ProductionRates))

	back, err := mapping.ToDomainLoadout(m)
	require.NoError(t, err)
	rate, ok := back.ProductionRateFor("REMOVAL")
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("2.5")))
}

func TestProjectReportEmptyNestedRecords(t *testing.T) {
	m, err := mapping.ToModelProjectReport(domain.ProjectReport{ReportID: "r-1", CompletedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(m.Crew))

	back, err := mapping.ToDomainProjectReport(m)
	require.NoError(t, err)
	assert.NotNil(t, back.LineItems)
	assert.Empty(t, back.EmployeeLogs)
}

func TestProjectReportCorruptJSON(t *testing.T) {
	m, err := mapping.ToModelProjectReport(domain.ProjectReport{ReportID: "r-2"})
	require.NoError(t, err)
	m.LineItems = []byte("{not json")

	_, err = mapping.ToDomainProjectReport(m)
	assert.ErrorContains(t, err, "r-2")
}
