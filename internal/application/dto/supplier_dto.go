package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor. Todos los campos son
// requeridos; supplierId sigue el patrón SUP-\d{3,5} y contact son 10 dígitos.
type CreateSupplierRequest struct {
	SupplierID string `json:"supplierId" validate:"required"`
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Contact    string `json:"contact" validate:"required,len=10"`
	Address    string `json:"address" validate:"required"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID         string    `json:"id"`
	SupplierID string    `json:"supplierId"`
	Name       string    `json:"name"`
	Contact    string    `json:"contact"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"createdAt"`
}
