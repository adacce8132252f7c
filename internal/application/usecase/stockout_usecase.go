package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/domain"
	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

// StockOutUseCase casos de uso del log de salidas de stock. El log es
// append-only: las entradas nunca se mutan ni se eliminan. El decremento de
// cantidad ocurre aparte (ProductUseCase.StockOut); aquí solo se registra.
type StockOutUseCase struct {
	repo        repository.StockOutRepository
	productRepo repository.ProductRepository
}

// NewStockOutUseCase construye el caso de uso.
func NewStockOutUseCase(repo repository.StockOutRepository, productRepo repository.ProductRepository) *StockOutUseCase {
	return &StockOutUseCase{repo: repo, productRepo: productRepo}
}

// Create agrega una entrada al log. El producto debe resolver; recordedBy es
// el usuario de la sesión; timestamp por defecto es ahora.
func (uc *StockOutUseCase) Create(userID string, in dto.CreateStockOutRequest) (*dto.StockOutResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.Product)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrInvalidInput // producto inválido, igual que el alta original
	}
	recordedAt := time.Now()
	if in.Timestamp != nil {
		recordedAt = *in.Timestamp
	}
	record := &entity.StockOut{
		ID:         uuid.New().String(),
		ProductID:  product.ID,
		Quantity:   in.Quantity,
		RecordedAt: recordedAt,
		RecordedBy: userID,
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	return &dto.StockOutResponse{
		ID:          record.ID,
		Product:     record.ProductID,
		ProductName: product.Name,
		Quantity:    record.Quantity,
		Timestamp:   record.RecordedAt,
		RecordedBy:  record.RecordedBy,
	}, nil
}

// List lista el log completo, más reciente primero, con nombres resueltos.
func (uc *StockOutUseCase) List(ctx context.Context) ([]dto.StockOutResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockOutResponse, 0, len(list))
	for _, d := range list {
		items = append(items, dto.StockOutResponse{
			ID:             d.ID,
			Product:        d.ProductID,
			ProductName:    d.ProductName,
			Quantity:       d.Quantity,
			Timestamp:      d.RecordedAt,
			RecordedBy:     d.RecordedBy,
			RecordedByName: d.RecordedByName,
		})
	}
	return items, nil
}
