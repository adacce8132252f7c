package dto

import "time"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Agregación derivada, recalculada en cada carga; sin caché ni garantía de
// frescura más allá de "al momento del último fetch".
type DashboardSummaryDTO struct {
	TotalProducts        int `json:"totalProducts"`
	TotalSuppliers       int `json:"totalSuppliers"`
	TotalStockOutRecords int `json:"totalStockOutRecords"`

	// Productos con cantidad < 10, sin filtrar por estado: un obsoleto con
	// poca cantidad también cuenta (peculiaridad documentada de la derivación).
	LowStockItems int `json:"lowStockItems"`

	// Productos cuyo vencimiento cae dentro de (0, 7] días desde ahora.
	SoonToExpire []ExpiringProductDTO `json:"soonToExpire"`

	// Últimas 5 salidas por timestamp descendente, con el nombre del producto
	// resuelto contra la lista de productos ("Producto desconocido" si falla).
	RecentStockOut []RecentStockOutDTO `json:"recentStockOut"`
}

// ExpiringProductDTO producto próximo a vencer en el widget del dashboard.
type ExpiringProductDTO struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	ExpiryDate time.Time `json:"expiryDate"`
	DaysLeft   int       `json:"daysLeft"`
}

// RecentStockOutDTO salida reciente en el widget del dashboard.
type RecentStockOutDTO struct {
	ID          string    `json:"id"`
	Product     string    `json:"product"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Timestamp   time.Time `json:"timestamp"`
}
