package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/domain"
	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con un repo de productos atado a una
// transacción. Lo implementa postgres.TxRunner; el uso de interfaz permite
// fakes en tests.
type TxRunner interface {
	Run(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}

// ProductUseCase dueño del ciclo de vida del producto: creación, salida de
// stock con decremento atómico, marcado obsolete y restauración.
//
// Máquina de estados sobre status: active, low-stock y out-of-stock se
// derivan de la cantidad (entity.DeriveStatus); obsolete es un override
// pegajoso que solo entra por MarkObsolete y solo sale por Restore.
type ProductUseCase struct {
	repo         repository.ProductRepository
	supplierRepo repository.SupplierRepository
	txRunner     TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, supplierRepo repository.SupplierRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, supplierRepo: supplierRepo, txRunner: txRunner}
}

// Create crea un producto. El estado inicial es SIEMPRE active, sin derivar
// de la cantidad inicial: comportamiento heredado que se conserva tal cual.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Quantity < 0 || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = entity.UnitPieces
	}
	if unit != entity.UnitPieces && unit != entity.UnitKg {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByProductID(in.ProductID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	supplier, err := uc.supplierRepo.GetByID(in.Supplier)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		ProductID:        in.ProductID,
		Name:             in.Name,
		Quantity:         in.Quantity,
		Price:            in.Price,
		SupplierID:       supplier.ID,
		SupplierName:     supplier.Name,
		ManufacturedDate: in.ManufacturedDate,
		ExpiryDate:       in.ExpiryDate,
		Unit:             unit,
		Status:           entity.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListObsolete lista solo los productos en estado obsolete.
func (uc *ProductUseCase) ListObsolete(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByStatus(ctx, entity.StatusObsolete)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// StockOut descuenta cantidad de un producto y recalcula el estado derivado.
// Todo o nada: una salida que dejaría cantidad negativa se rechaza entera con
// InsufficientStockError (reporta lo disponible). No aplica sobre obsoletos.
//
// El check y la escritura corren en una transacción con la fila bloqueada
// (SELECT FOR UPDATE): dos salidas concurrentes no pueden leer la misma
// cantidad antes de escribir.
func (uc *ProductUseCase) StockOut(ctx context.Context, id string, amount int) (*dto.ProductResponse, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository) error {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.IsObsolete() {
			return domain.ErrConflict
		}
		if amount > product.Quantity {
			return &domain.InsufficientStockError{Available: product.Quantity}
		}
		product.Quantity -= amount
		product.Status = entity.DeriveStatus(product.Quantity)
		if err := productRepo.UpdateQuantityStatus(product.ID, product.Quantity, product.Status); err != nil {
			return err
		}
		product.UpdatedAt = time.Now()
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkObsolete pone el producto en el estado terminal obsolete, con la
// cantidad intacta. Sin precondición sobre el estado previo e idempotente:
// repetirlo deja status = obsolete. Un producto con cantidad > 0 también
// puede marcarse (ej: stock retirado del mercado).
func (uc *ProductUseCase) MarkObsolete(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Status = entity.StatusObsolete
	if err := uc.repo.UpdateStatus(product.ID, product.Status); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	return toProductResponse(product), nil
}

// Restore saca al producto de obsolete recalculando el estado desde la
// cantidad actual con la misma regla de derivación que la salida de stock:
// restaurar un obsoleto con cantidad 0 da out-of-stock, no active.
func (uc *ProductUseCase) Restore(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Status = entity.DeriveStatus(product.Quantity)
	if err := uc.repo.UpdateStatus(product.ID, product.Status); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		ProductID:        p.ProductID,
		Name:             p.Name,
		Quantity:         p.Quantity,
		Price:            p.Price,
		Supplier:         p.SupplierID,
		SupplierName:     p.SupplierName,
		ManufacturedDate: p.ManufacturedDate,
		ExpiryDate:       p.ExpiryDate,
		Unit:             p.Unit,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}
