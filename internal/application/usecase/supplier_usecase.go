package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/domain"
	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

// SupplierUseCase casos de uso para proveedores: alta y listado.
// No hay eliminación: los productos referencian proveedores y la relación
// nunca se rompe.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor. SupplierID se normaliza a mayúsculas y debe
// seguir el patrón SUP-\d{3,5}; contact son exactamente 10 dígitos.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplierID := strings.ToUpper(strings.TrimSpace(in.SupplierID))
	if !entity.SupplierIDPattern.MatchString(supplierID) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ContactPattern.MatchString(in.Contact) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetBySupplierID(supplierID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	supplier := &entity.Supplier{
		ID:         uuid.New().String(),
		SupplierID: supplierID,
		Name:       strings.TrimSpace(in.Name),
		Contact:    in.Contact,
		Address:    in.Address,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista todos los proveedores, los más recientes primero.
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:         s.ID,
		SupplierID: s.SupplierID,
		Name:       s.Name,
		Contact:    s.Contact,
		Address:    s.Address,
		CreatedAt:  s.CreatedAt,
	}
}
