package pgsql

import (
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo:  newPgxCustomerRepository(dbPool),
		EmployeeRepo:  newPgxEmployeeRepository(dbPool),
		EquipmentRepo: newPgxEquipmentRepository(dbPool),
		LoadoutRepo:   newPgxLoadoutRepository(dbPool),
		JobRepo:       newPgxJobRepository(dbPool),
		LineItemRepo:  newPgxLineItemRepository(dbPool),
		TimeLogRepo:   newPgxTimeLogRepository(dbPool),
		ReportRepo:    newPgxProjectReportRepository(dbPool),
		AnalyticsRepo: newAnalyticsRepository(dbPool),
		WorkforceRepo: newPgxWorkforceRepository(dbPool),
		APITokenRepo:  newPgxAPITokenRepository(dbPool),
	}
}
