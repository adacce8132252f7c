package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product.status.
const (
	StatusActive     = "active"
	StatusLowStock   = "low-stock"
	StatusOutOfStock = "out-of-stock"
	StatusObsolete   = "obsolete"
)

// Unidades válidas para Product.unit.
const (
	UnitPieces = "pieces"
	UnitKg     = "kg"
)

// LowStockThreshold cantidad por debajo de la cual un producto se considera
// en stock bajo. Lo comparte la derivación de estado y el dashboard.
const LowStockThreshold = 10

// Product representa un producto del inventario. ProductID es la clave de
// negocio (única e inmutable); ID es el identificador de almacenamiento.
//
// El status se persiste de forma redundante: DeriveStatus es la única
// autoridad para los estados no-obsolete, y "obsolete" es un override
// pegajoso que solo un admin pone y solo Restore quita.
type Product struct {
	ID               string
	ProductID        string // clave de negocio única, ej: P-1001
	Name             string
	Quantity         int // nunca negativo
	Price            decimal.Decimal
	SupplierID       string // referencia a Supplier.ID
	SupplierName     string // derivado del JOIN con suppliers; no se persiste
	ManufacturedDate time.Time
	ExpiryDate       *time.Time // opcional
	Unit             string     // pieces, kg
	Status           string     // active, low-stock, out-of-stock, obsolete
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DeriveStatus calcula el estado a partir de la cantidad. Es la única
// autoridad para las transiciones no-obsolete: la usan tanto la salida de
// stock como la restauración.
func DeriveStatus(quantity int) string {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity < LowStockThreshold:
		return StatusLowStock
	default:
		return StatusActive
	}
}

// IsObsolete indica si el producto está en el estado terminal obsolete.
func (p *Product) IsObsolete() bool {
	return p.Status == StatusObsolete
}
