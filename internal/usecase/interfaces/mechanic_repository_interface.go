package interfaces

import (
	"context"

	"moto_workshop/internal/domain/entities"
)

// IMechanicRepository abstracts persistence for Mechanic reference data.
type IMechanicRepository interface {
	Create(ctx context.Context, mechanic entities.Mechanic) (entities.Mechanic, error)
	GetByID(ctx context.Context, id string) (entities.Mechanic, error)
	// ListActive returns mechanics flagged active, ordered by name.
	ListActive(ctx context.Context) ([]entities.Mechanic, error)
}

// ICustomerRepository is read-only: customers are owned elsewhere.
type ICustomerRepository interface {
	// GetByIDs skips ids that do not exist.
	GetByIDs(ctx context.Context, ids []string) (map[string]entities.Customer, error)
}
