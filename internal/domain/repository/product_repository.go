package repository

import (
	"context"

	"github.com/dcastano/almacen-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate solo tiene sentido dentro de una transacción (SELECT FOR UPDATE).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByProductID(productID string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	UpdateQuantityStatus(id string, quantity int, status string) error
	UpdateStatus(id string, status string) error
	List(ctx context.Context) ([]*entity.Product, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Product, error)
}
