package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. ExpiryDate es opcional.
type CreateProductRequest struct {
	ProductID        string          `json:"productId" validate:"required,min=1,max=100"`
	Name             string          `json:"name" validate:"required,min=1,max=200"`
	Quantity         int             `json:"quantity" validate:"min=0"`
	Price            decimal.Decimal `json:"price"`
	Supplier         string          `json:"supplier" validate:"required"` // ID de almacenamiento del proveedor
	ManufacturedDate time.Time       `json:"manufacturedDate" validate:"required"`
	ExpiryDate       *time.Time      `json:"expiryDate"`
	Unit             string          `json:"unit" validate:"omitempty,oneof=pieces kg"`
}

// StockOutRequest entrada para registrar una salida de stock sobre un producto.
type StockOutRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"productId"`
	Name             string          `json:"name"`
	Quantity         int             `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	Supplier         string          `json:"supplier"`
	SupplierName     string          `json:"supplierName,omitempty"`
	ManufacturedDate time.Time       `json:"manufacturedDate"`
	ExpiryDate       *time.Time      `json:"expiryDate,omitempty"`
	Unit             string          `json:"unit"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
