package repository

import (
	"context"

	"github.com/dcastano/almacen-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// No hay Delete: la eliminación de proveedores no está soportada.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetBySupplierID(supplierID string) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
}
