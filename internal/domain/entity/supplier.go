package entity

import (
	"regexp"
	"time"
)

// Patrones de validación para Supplier. SupplierID es clave de negocio
// inmutable; Contact es un teléfono de 10 dígitos.
var (
	SupplierIDPattern = regexp.MustCompile(`^SUP-\d{3,5}$`)
	ContactPattern    = regexp.MustCompile(`^\d{10}$`)
)

// Supplier representa un proveedor. Referenciado por Product (muchos a uno);
// no se soporta eliminación.
type Supplier struct {
	ID         string
	SupplierID string // clave de negocio única, ej: SUP-101
	Name       string
	Contact    string // teléfono de 10 dígitos
	Address    string
	CreatedAt  time.Time
}
