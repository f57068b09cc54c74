package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// resourceSet is the crew and machines chosen for a line item together with
// what they cost per hour.
type resourceSet struct {
	LoadoutID    string
	EmployeeIDs  []string
	EquipmentIDs []string
	CostPerHour  decimal.Decimal
	// HasResources is false when neither a loadout nor any member was selected.
	HasResources bool
	// LoadoutRate is the loadout's production rate for the service type, when it has one.
	LoadoutRate    decimal.Decimal
	HasLoadoutRate bool
}

// resourceResolver loads resources referenced by a request and checks they
// belong to the caller's organization.
type resourceResolver struct {
	base          *BaseService
	employeeRepo  portsrepo.EmployeeReader
	equipmentRepo portsrepo.EquipmentReader
	loadoutRepo   portsrepo.LoadoutReader
}

func newResourceResolver(base *BaseService, employees portsrepo.EmployeeReader, equipment portsrepo.EquipmentReader, loadouts portsrepo.LoadoutReader) *resourceResolver {
	return &resourceResolver{base: base, employeeRepo: employees, equipmentRepo: equipment, loadoutRepo: loadouts}
}

// employees returns the requested employees in request order.
func (r *resourceResolver) employees(ctx context.Context, companyID string, ids []string) ([]domain.Employee, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := r.employeeRepo.FindEmployeesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Employee, 0, len(ids))
	for _, id := range ids {
		e, ok := found[id]
		if !ok {
			return nil, fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, id)
		}
		if err := r.base.CheckOwner(ctx, companyID, e.CompanyID, "employee", id); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// equipment returns the requested machines in request order.
func (r *resourceResolver) equipment(ctx context.Context, companyID string, ids []string) ([]domain.Equipment, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := r.equipmentRepo.FindEquipmentByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Equipment, 0, len(ids))
	for _, id := range ids {
		e, ok := found[id]
		if !ok {
			return nil, fmt.Errorf("%w: equipment %s", apperrors.ErrNotFound, id)
		}
		if err := r.base.CheckOwner(ctx, companyID, e.CompanyID, "equipment", id); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *resourceResolver) loadout(ctx context.Context, companyID, loadoutID string) (*domain.Loadout, error) {
	l, err := r.loadoutRepo.FindLoadoutByID(ctx, loadoutID)
	if err != nil {
		return nil, err
	}
	if err := r.base.CheckOwner(ctx, companyID, l.CompanyID, "loadout", loadoutID); err != nil {
		return nil, err
	}
	return l, nil
}

// memberCost sums the effective rates and hourly costs of the given members.
func (r *resourceResolver) memberCost(ctx context.Context, companyID string, employeeIDs, equipmentIDs []string) (decimal.Decimal, error) {
	employees, err := r.employees(ctx, companyID, employeeIDs)
	if err != nil {
		return decimal.Zero, err
	}
	machines, err := r.equipment(ctx, companyID, equipmentIDs)
	if err != nil {
		return decimal.Zero, err
	}
	return costing.SumResourceRates(employeeRates(employees), equipmentCosts(machines)), nil
}

// resolve prices the selection. A loadout takes precedence over manually
// selected members and contributes its stored hourly total.
func (r *resourceResolver) resolve(ctx context.Context, companyID, loadoutID string, employeeIDs, equipmentIDs []string, serviceType string) (resourceSet, error) {
	if loadoutID != "" {
		l, err := r.loadout(ctx, companyID, loadoutID)
		if err != nil {
			return resourceSet{}, err
		}
		set := resourceSet{
			LoadoutID:    l.LoadoutID,
			EmployeeIDs:  append([]string{}, l.EmployeeIDs...),
			EquipmentIDs: append([]string{}, l.EquipmentIDs...),
			CostPerHour:  l.TotalHourlyCost,
			HasResources: true,
		}
		set.LoadoutRate, set.HasLoadoutRate = l.ProductionRateFor(serviceType)
		return set, nil
	}

	employeeIDs = uniqueIDs(employeeIDs)
	equipmentIDs = uniqueIDs(equipmentIDs)
	cost, err := r.memberCost(ctx, companyID, employeeIDs, equipmentIDs)
	if err != nil {
		return resourceSet{}, err
	}
	return resourceSet{
		EmployeeIDs:  employeeIDs,
		EquipmentIDs: equipmentIDs,
		CostPerHour:  cost,
		HasResources: len(employeeIDs) > 0 || len(equipmentIDs) > 0,
	}, nil
}

func employeeRates(employees []domain.Employee) []decimal.Decimal {
	rates := make([]decimal.Decimal, len(employees))
	for i, e := range employees {
		rates[i] = e.EffectiveRate
	}
	return rates
}

func equipmentCosts(machines []domain.Equipment) []decimal.Decimal {
	costs := make([]decimal.Decimal, len(machines))
	for i, m := range machines {
		costs[i] = m.HourlyCost
	}
	return costs
}

// uniqueIDs drops blanks and repeats while keeping the first occurrence order.
func uniqueIDs(ids []string) []string {
	if len(ids) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
