// Package analytics contiene el caso de uso del resumen del dashboard: una
// vista derivada de solo lectura, recalculada en cada carga a partir de las
// tres colecciones (productos, proveedores, log de salidas).
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

const (
	dashboardRecentStockOut = 5                // entradas en el widget de salidas recientes
	expiryWindowDays        = 7                // ventana de "próximos a vencer": (0, 7] días
	fetchTimeout            = 15 * time.Second // tope duro para las tres consultas
)

// unknownProductName fallback cuando la referencia de una salida no resuelve
// contra la lista de productos.
const unknownProductName = "Producto desconocido"

// DashboardUseCase agrega los tres listados en el resumen del dashboard.
// Sin caché ni actualización incremental: la frescura es "al último fetch".
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	stockOutRepo repository.StockOutRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	stockOutRepo repository.StockOutRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		stockOutRepo: stockOutRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres consultas en paralelo (productos, proveedores, salidas) bajo un
// timeout de 15 segundos; si alguna falla o se agota el tiempo, falla toda
// la agregación.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type suppliersResult struct {
		list []*entity.Supplier
		err  error
	}
	type stockOutResult struct {
		list []*entity.StockOutDetail
		err  error
	}

	productsCh := make(chan productsResult, 1)
	suppliersCh := make(chan suppliersResult, 1)
	stockOutCh := make(chan stockOutResult, 1)

	go func() {
		list, err := uc.productRepo.List(ctx)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.supplierRepo.List(ctx)
		suppliersCh <- suppliersResult{list, err}
	}()
	go func() {
		list, err := uc.stockOutRepo.List(ctx)
		stockOutCh <- stockOutResult{list, err}
	}()

	products := <-productsCh
	suppliers := <-suppliersCh
	stockOut := <-stockOutCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if suppliers.err != nil {
		return nil, fmt.Errorf("dashboard: proveedores: %w", suppliers.err)
	}
	if stockOut.err != nil {
		return nil, fmt.Errorf("dashboard: salidas: %w", stockOut.err)
	}

	now := time.Now()
	summary := &dto.DashboardSummaryDTO{
		TotalProducts:        len(products.list),
		TotalSuppliers:       len(suppliers.list),
		TotalStockOutRecords: len(stockOut.list),
		LowStockItems:        countLowStock(products.list),
		SoonToExpire:         soonToExpire(products.list, now),
		RecentStockOut:       recentStockOut(stockOut.list, products.list),
	}
	return summary, nil
}

// countLowStock cuenta productos con cantidad < 10 sin mirar el campo status:
// un obsoleto con poca cantidad también cuenta. Peculiaridad heredada de la
// derivación, documentada y conservada.
func countLowStock(products []*entity.Product) int {
	n := 0
	for _, p := range products {
		if p.Quantity < entity.LowStockThreshold {
			n++
		}
	}
	return n
}

// soonToExpire filtra productos cuyo vencimiento cae dentro de (0, 7] días
// desde ahora. Día 0 (ya vencido u hoy) queda fuera; día 8 también.
func soonToExpire(products []*entity.Product, now time.Time) []dto.ExpiringProductDTO {
	out := make([]dto.ExpiringProductDTO, 0)
	for _, p := range products {
		if p.ExpiryDate == nil {
			continue
		}
		days := daysUntil(now, *p.ExpiryDate)
		if days > 0 && days <= expiryWindowDays {
			out = append(out, dto.ExpiringProductDTO{
				ID:         p.ID,
				ProductID:  p.ProductID,
				Name:       p.Name,
				Quantity:   p.Quantity,
				ExpiryDate: *p.ExpiryDate,
				DaysLeft:   days,
			})
		}
	}
	return out
}

// daysUntil días hasta la fecha, redondeando hacia arriba (igual que el
// Math.ceil del cliente original).
func daysUntil(now, expiry time.Time) int {
	diff := expiry.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// recentStockOut toma las 5 salidas más recientes (la lista ya viene por
// timestamp descendente) y resuelve el producto contra la lista traída en el
// mismo fetch, con fallback si la referencia no aparece.
func recentStockOut(records []*entity.StockOutDetail, products []*entity.Product) []dto.RecentStockOutDTO {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	limit := dashboardRecentStockOut
	if len(records) < limit {
		limit = len(records)
	}
	out := make([]dto.RecentStockOutDTO, 0, limit)
	for _, r := range records[:limit] {
		name := unknownProductName
		if p, ok := byID[r.ProductID]; ok {
			name = p.Name
		}
		out = append(out, dto.RecentStockOutDTO{
			ID:          r.ID,
			Product:     r.ProductID,
			ProductName: name,
			Quantity:    r.Quantity,
			Timestamp:   r.RecordedAt,
		})
	}
	return out
}
