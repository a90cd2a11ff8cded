// Package report holds the pure aggregation views the dashboard renders:
// condominium groupings and the daily production summary. Inputs are small,
// so everything is recomputed eagerly on each call.
package report

import "github.com/paododia/paododia-admin-service/internal/model"

// OrderGroup is one condominium's slice of orders. Group order follows the
// first-seen condominium; relative order within a group is preserved.
type OrderGroup struct {
	Condominium string        `json:"condominium"`
	Orders      []model.Order `json:"orders"`
}

func GroupOrdersByCondominium(orders []model.Order) []OrderGroup {
	index := make(map[string]int)
	groups := make([]OrderGroup, 0)
	for _, o := range orders {
		i, ok := index[o.Condominium]
		if !ok {
			i = len(groups)
			index[o.Condominium] = i
			groups = append(groups, OrderGroup{Condominium: o.Condominium})
		}
		groups[i].Orders = append(groups[i].Orders, o)
	}
	return groups
}

type CustomerGroup struct {
	Condominium string           `json:"condominium"`
	Customers   []model.Customer `json:"customers"`
}

func GroupCustomersByCondominium(customers []model.Customer) []CustomerGroup {
	index := make(map[string]int)
	groups := make([]CustomerGroup, 0)
	for _, c := range customers {
		i, ok := index[c.Condominium]
		if !ok {
			i = len(groups)
			index[c.Condominium] = i
			groups = append(groups, CustomerGroup{Condominium: c.Condominium})
		}
		groups[i].Customers = append(groups[i].Customers, c)
	}
	return groups
}

// ProductTotal is a summed quantity for one product name.
type ProductTotal struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

type CondominiumProduction struct {
	Condominium string         `json:"condominium"`
	Items       []ProductTotal `json:"items"`
}

// ProductionSummary tells the bakery what to bake: per-condominium quantities
// plus the flattened totals across all condominiums.
type ProductionSummary struct {
	Totals        []ProductTotal          `json:"totals"`
	ByCondominium []CondominiumProduction `json:"byCondominium"`
}

// BuildProductionSummary folds pending orders into summed quantities.
// Delivered and cancelled orders contribute nothing. Both levels keep
// first-seen ordering.
func BuildProductionSummary(orders []model.Order) *ProductionSummary {
	summary := &ProductionSummary{
		Totals:        make([]ProductTotal, 0),
		ByCondominium: make([]CondominiumProduction, 0),
	}

	condoIndex := make(map[string]int)
	totalIndex := make(map[string]int)
	itemIndex := make(map[string]map[string]int) // condominium -> product name -> slice index

	for _, o := range orders {
		if o.Status != model.StatusPending {
			continue
		}

		ci, ok := condoIndex[o.Condominium]
		if !ok {
			ci = len(summary.ByCondominium)
			condoIndex[o.Condominium] = ci
			summary.ByCondominium = append(summary.ByCondominium, CondominiumProduction{Condominium: o.Condominium})
			itemIndex[o.Condominium] = make(map[string]int)
		}

		for _, item := range o.Items {
			pi, ok := itemIndex[o.Condominium][item.ProductName]
			if !ok {
				pi = len(summary.ByCondominium[ci].Items)
				itemIndex[o.Condominium][item.ProductName] = pi
				summary.ByCondominium[ci].Items = append(summary.ByCondominium[ci].Items, ProductTotal{ProductName: item.ProductName})
			}
			summary.ByCondominium[ci].Items[pi].Quantity += item.Quantity

			ti, ok := totalIndex[item.ProductName]
			if !ok {
				ti = len(summary.Totals)
				totalIndex[item.ProductName] = ti
				summary.Totals = append(summary.Totals, ProductTotal{ProductName: item.ProductName})
			}
			summary.Totals[ti].Quantity += item.Quantity
		}
	}

	return summary
}
