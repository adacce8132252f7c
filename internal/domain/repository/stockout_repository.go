package repository

import (
	"context"

	"github.com/dcastano/almacen-api/internal/domain/entity"
)

// StockOutRepository define el puerto de persistencia para el log de salidas.
// El log es append-only: solo Create y lecturas.
type StockOutRepository interface {
	Create(record *entity.StockOut) error
	List(ctx context.Context) ([]*entity.StockOutDetail, error)
}
