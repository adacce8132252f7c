package dto

import "time"

// CreateStockOutRequest entrada para registrar una entrada en el log de
// salidas. El cliente la envía tras una salida de stock exitosa sobre el
// producto; timestamp es opcional (por defecto ahora).
type CreateStockOutRequest struct {
	Product   string     `json:"product" validate:"required"` // ID de almacenamiento del producto
	Quantity  int        `json:"quantity" validate:"required,gt=0"`
	Timestamp *time.Time `json:"timestamp"`
}

// StockOutResponse salida de una entrada del log, con nombres resueltos.
type StockOutResponse struct {
	ID             string    `json:"id"`
	Product        string    `json:"product"`
	ProductName    string    `json:"productName,omitempty"`
	Quantity       int       `json:"quantity"`
	Timestamp      time.Time `json:"timestamp"`
	RecordedBy     string    `json:"recordedBy"`
	RecordedByName string    `json:"recordedByName,omitempty"`
}
