package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/application/usecase"
	"github.com/dcastano/almacen-api/internal/domain"
	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByProductID(productID string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.ProductID == productID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateQuantityStatus(id string, quantity int, status string) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	p.Status = status
	return nil
}

func (r *fakeProductRepo) UpdateStatus(id string, status string) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	return nil
}

func (r *fakeProductRepo) List(context.Context) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) ListByStatus(_ context.Context, status string) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.byID {
		if p.Status == status {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

type fakeSupplierRepo struct {
	byID map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{byID: make(map[string]*entity.Supplier)}
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.byID[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.byID[id], nil
}

func (r *fakeSupplierRepo) GetBySupplierID(supplierID string) (*entity.Supplier, error) {
	for _, s := range r.byID {
		if s.SupplierID == supplierID {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) List(context.Context) ([]*entity.Supplier, error) {
	list := make([]*entity.Supplier, 0, len(r.byID))
	for _, s := range r.byID {
		list = append(list, s)
	}
	return list, nil
}

// fakeTxRunner ejecuta el callback directamente sobre el repo en memoria,
// sin transacción real.
type fakeTxRunner struct {
	repo repository.ProductRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(productRepo repository.ProductRepository) error) error {
	return fn(r.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func newProductFixture(t *testing.T) (*usecase.ProductUseCase, *fakeProductRepo, *entity.Supplier) {
	t.Helper()
	productRepo := newFakeProductRepo()
	supplierRepo := newFakeSupplierRepo()
	supplier := &entity.Supplier{
		ID:         "supplier-1",
		SupplierID: "SUP-101",
		Name:       "Distribuidora Andina",
		Contact:    "3001234567",
		Address:    "Calle 10 #20-30",
		CreatedAt:  time.Now(),
	}
	require.NoError(t, supplierRepo.Create(supplier))
	uc := usecase.NewProductUseCase(productRepo, supplierRepo, &fakeTxRunner{repo: productRepo})
	return uc, productRepo, supplier
}

func createProduct(t *testing.T, uc *usecase.ProductUseCase, productID string, quantity int) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateProductRequest{
		ProductID:        productID,
		Name:             "Arroz premium",
		Quantity:         quantity,
		Price:            decimal.NewFromFloat(3500.50),
		Supplier:         "supplier-1",
		ManufacturedDate: time.Now().AddDate(0, -1, 0),
		Unit:             entity.UnitPieces,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// El estado inicial es siempre active, sin importar la cantidad inicial.
func TestCreate_EstadoInicialSiempreActive(t *testing.T) {
	uc, _, _ := newProductFixture(t)

	conStock := createProduct(t, uc, "P-1001", 50)
	assert.Equal(t, entity.StatusActive, conStock.Status)

	pocoStock := createProduct(t, uc, "P-1002", 3)
	assert.Equal(t, entity.StatusActive, pocoStock.Status,
		"crear con cantidad baja no deriva low-stock; el estado inicial es active")

	sinStock := createProduct(t, uc, "P-1003", 0)
	assert.Equal(t, entity.StatusActive, sinStock.Status,
		"crear con cantidad cero no deriva out-of-stock; el estado inicial es active")
}

func TestCreate_ProductIDDuplicado(t *testing.T) {
	uc, _, _ := newProductFixture(t)
	createProduct(t, uc, "P-1001", 10)

	_, err := uc.Create(dto.CreateProductRequest{
		ProductID:        "P-1001",
		Name:             "Otro producto",
		Quantity:         5,
		Price:            decimal.NewFromInt(100),
		Supplier:         "supplier-1",
		ManufacturedDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_ProveedorInexistente(t *testing.T) {
	uc, _, _ := newProductFixture(t)

	_, err := uc.Create(dto.CreateProductRequest{
		ProductID:        "P-2001",
		Name:             "Sin proveedor",
		Quantity:         5,
		Price:            decimal.NewFromInt(100),
		Supplier:         "no-existe",
		ManufacturedDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_EntradasInvalidas(t *testing.T) {
	uc, _, _ := newProductFixture(t)

	_, err := uc.Create(dto.CreateProductRequest{
		ProductID: "P-3001", Name: "Cantidad negativa", Quantity: -1,
		Price: decimal.NewFromInt(100), Supplier: "supplier-1", ManufacturedDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa debe rechazarse")

	_, err = uc.Create(dto.CreateProductRequest{
		ProductID: "P-3002", Name: "Precio negativo", Quantity: 1,
		Price: decimal.NewFromInt(-5), Supplier: "supplier-1", ManufacturedDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo debe rechazarse")

	_, err = uc.Create(dto.CreateProductRequest{
		ProductID: "P-3003", Name: "Unidad rara", Quantity: 1,
		Price: decimal.NewFromInt(5), Supplier: "supplier-1", ManufacturedDate: time.Now(),
		Unit: "litros",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unidad fuera de pieces/kg debe rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests StockOut — máquina de estados derivada de la cantidad
// ──────────────────────────────────────────────────────────────────────────────

// Secuencia completa: 50 → 45 (active) → 5 (low-stock) → 0 (out-of-stock) →
// siguiente salida rechazada.
func TestStockOut_SecuenciaDeEstados(t *testing.T) {
	uc, _, _ := newProductFixture(t)
	p := createProduct(t, uc, "P-1001", 50)
	ctx := context.Background()

	out, err := uc.StockOut(ctx, p.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 45, out.Quantity)
	assert.Equal(t, entity.StatusActive, out.Status)

	out, err = uc.StockOut(ctx, p.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Quantity)
	assert.Equal(t, entity.StatusLowStock, out.Status,
		"cantidad 5 (< 10) debe derivar low-stock")

	out, err = uc.StockOut(ctx, p.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)
	assert.Equal(t, entity.StatusOutOfStock, out.Status,
		"cantidad 0 debe derivar out-of-stock")

	_, err = uc.StockOut(ctx, p.ID, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"con cantidad 0, cualquier salida debe rechazarse")
}

// Una salida que excede lo disponible se rechaza entera y no muta nada.
func TestStockOut_InsuficienteNoMuta(t *testing.T) {
	uc, repo, _ := newProductFixture(t)
	p := createProduct(t, uc, "P-1001", 10)

	_, err := uc.StockOut(context.Background(), p.ID, 11)

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient), "debe ser InsufficientStockError")
	assert.Equal(t, 10, insufficient.Available, "debe reportar la cantidad disponible")

	persisted, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, persisted.Quantity, "la cantidad no debe cambiar")
	assert.Equal(t, entity.StatusActive, persisted.Status, "el estado no debe cambiar")
}

func TestStockOut_CantidadInvalida(t *testing.T) {
	uc, _, _ := newProductFixture(t)
	p := createProduct(t, uc, "P-1001", 10)
	ctx := context.Background()

	_, err := uc.StockOut(ctx, p.ID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.StockOut(ctx, p.ID, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockOut_ProductoInexistente(t *testing.T) {
	uc, _, _ := newProductFixture(t)
	_, err := uc.StockOut(context.Background(), "no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Obsolete es pegajoso: ni la salida de stock aplica ni el estado se recalcula.
func TestStockOut_ProductoObsoletoRechazado(t *testing.T) {
	uc, _, _ := newProductFixture(t)
	p := createProduct(t, uc, "P-1001", 50)
	_, err := uc.MarkObsolete(p.ID)
	require.NoError(t, err)

	_, err = uc.StockOut(context.Background(), p.ID, 1)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"salida de stock sobre obsoleto debe rechazarse con conflicto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MarkObsolete / Restore
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkObsolete_CantidadIntactaEIdempotente(t *testing.T) {
	uc, repo, _ := newProductFixture(t)
	p := createProduct(t, uc, "P-1001", 42)

	out, err := uc.MarkObsolete(p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusObsolete, out.Status)
	assert.Equal(t, 42, out.Quantity, "marcar obsoleto no toca la cantidad")

	// Idempotente: repetirlo deja el mismo estado.
	out, err = uc.MarkObsolete(p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusObsolete, out.Status)

	persisted, _ := repo.GetByID(p.ID)
	assert.Equal(t, 42, persisted.Quantity)
}

func TestMarkObsolete_NoEncontrado(t *testing.T) {
	uc, _, _ := newProductFixture(t)
	_, err := uc.MarkObsolete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Restaurar deriva el estado desde la cantidad actual: un obsoleto agotado
// vuelve como out-of-stock, no como active.
func TestRestore_DerivaDesdeCantidad(t *testing.T) {
	uc, _, _ := newProductFixture(t)
	ctx := context.Background()

	// Producto agotado y luego marcado obsoleto.
	p := createProduct(t, uc, "P-1001", 5)
	_, err := uc.StockOut(ctx, p.ID, 5)
	require.NoError(t, err)
	_, err = uc.MarkObsolete(p.ID)
	require.NoError(t, err)

	out, err := uc.Restore(p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOutOfStock, out.Status,
		"restaurar con cantidad 0 debe dar out-of-stock")

	// Con poca cantidad restaura a low-stock; con suficiente, a active.
	p2 := createProduct(t, uc, "P-1002", 7)
	_, err = uc.MarkObsolete(p2.ID)
	require.NoError(t, err)
	out, err = uc.Restore(p2.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusLowStock, out.Status)

	p3 := createProduct(t, uc, "P-1003", 70)
	_, err = uc.MarkObsolete(p3.ID)
	require.NoError(t, err)
	out, err = uc.Restore(p3.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, out.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ListObsolete
// ──────────────────────────────────────────────────────────────────────────────

func TestListObsolete_FiltraPorEstado(t *testing.T) {
	uc, _, _ := newProductFixture(t)
	createProduct(t, uc, "P-1001", 10)
	p2 := createProduct(t, uc, "P-1002", 10)
	_, err := uc.MarkObsolete(p2.ID)
	require.NoError(t, err)

	list, err := uc.ListObsolete(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "P-1002", list[0].ProductID)
}
