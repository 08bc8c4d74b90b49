package scheduling

import (
	"sort"

	"moto_workshop/internal/domain/entities"
)

// Score weights. They are additive and independent.
const (
	WeightInProgress       = 50
	WeightUrgent           = 100
	WeightHigh             = 60
	WeightCustomerWaiting  = 80
	WeightPriorityCustomer = 40
)

// PriorityInput is the subset of a work order (and its customer) that feeds the score.
type PriorityInput struct {
	Status             entities.WorkOrderStatus
	Priority           entities.WorkOrderPriority
	CustomerWaiting    bool
	IsPriorityCustomer bool
}

// PriorityScore ranks backlog jobs: higher goes first. Always in [0, 270].
func PriorityScore(in PriorityInput) int {
	score := 0
	if in.Status == entities.WorkOrderStatusInProgress {
		score += WeightInProgress
	}
	switch in.Priority {
	case entities.WorkOrderPriorityUrgent:
		score += WeightUrgent
	case entities.WorkOrderPriorityHigh:
		score += WeightHigh
	}
	if in.CustomerWaiting {
		score += WeightCustomerWaiting
	}
	if in.IsPriorityCustomer {
		score += WeightPriorityCustomer
	}
	return score
}

// RankBacklog scores and orders backlog jobs by score descending. Input order
// (creation time, oldest first) is kept among equal scores. customers is keyed
// by customer id; a missing entry counts as a non-priority customer.
func RankBacklog(orders []entities.WorkOrder, customers map[string]entities.Customer) []entities.RankedWorkOrder {
	ranked := make([]entities.RankedWorkOrder, 0, len(orders))
	for _, wo := range orders {
		ranked = append(ranked, entities.RankedWorkOrder{
			WorkOrder: wo,
			Score: PriorityScore(PriorityInput{
				Status:             wo.Status,
				Priority:           wo.Priority,
				CustomerWaiting:    wo.CustomerWaiting,
				IsPriorityCustomer: customers[wo.CustomerID].IsPriority,
			}),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
