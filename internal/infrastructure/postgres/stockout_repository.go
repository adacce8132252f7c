package postgres

import (
	"context"
	"fmt"

	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

// StockOutRepo implementación del puerto StockOutRepository sobre PostgreSQL.
// El log es append-only: no hay UPDATE ni DELETE sobre esta tabla.
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository construye el adaptador del log de salidas.
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

// Create agrega una entrada al log de salidas.
func (r *StockOutRepo) Create(record *entity.StockOut) error {
	query := `
		INSERT INTO stock_out_records (id, product_id, quantity, recorded_at, recorded_by)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.ProductID, record.Quantity, record.RecordedAt, record.RecordedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock out record: %w", err)
	}
	return nil
}

// List lista las salidas más recientes primero, con nombre de producto y de
// quien registró resueltos vía JOIN. Si la referencia no resuelve, el nombre
// queda vacío y la capa de presentación aplica su fallback.
func (r *StockOutRepo) List(ctx context.Context) ([]*entity.StockOutDetail, error) {
	query := `
		SELECT so.id, so.product_id, so.quantity, so.recorded_at, so.recorded_by,
		       COALESCE(p.name, ''), COALESCE(u.full_name, '')
		FROM stock_out_records so
		LEFT JOIN products p ON p.id = so.product_id
		LEFT JOIN users u ON u.id = so.recorded_by
		ORDER BY so.recorded_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock out records: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockOutDetail
	for rows.Next() {
		var d entity.StockOutDetail
		if err := rows.Scan(&d.ID, &d.ProductID, &d.Quantity, &d.RecordedAt, &d.RecordedBy,
			&d.ProductName, &d.RecordedByName); err != nil {
			return nil, fmt.Errorf("scan stock out record: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
