package entity

import "time"

// StockOut es una entrada del log de salidas de stock. Append-only: nunca se
// muta ni se elimina.
type StockOut struct {
	ID         string
	ProductID  string // referencia a Product.ID
	Quantity   int
	RecordedAt time.Time
	RecordedBy string // referencia a User.ID
}

// StockOutDetail es la vista de lectura de un registro de salida con los
// nombres resueltos vía JOIN (para el listado y el dashboard).
type StockOutDetail struct {
	StockOut
	ProductName    string
	RecordedByName string
}
