package usecase_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/application/usecase"
	"github.com/dcastano/almacen-api/internal/domain"
	"github.com/dcastano/almacen-api/internal/domain/entity"
)

type fakeStockOutRepo struct {
	records []*entity.StockOut
}

func (r *fakeStockOutRepo) Create(record *entity.StockOut) error {
	cp := *record
	r.records = append(r.records, &cp)
	return nil
}

func (r *fakeStockOutRepo) List(context.Context) ([]*entity.StockOutDetail, error) {
	list := make([]*entity.StockOutDetail, 0, len(r.records))
	for _, rec := range r.records {
		list = append(list, &entity.StockOutDetail{StockOut: *rec})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].RecordedAt.After(list[j].RecordedAt)
	})
	return list, nil
}

func newStockOutFixture(t *testing.T) (*usecase.StockOutUseCase, *fakeStockOutRepo, *entity.Product) {
	t.Helper()
	productRepo := newFakeProductRepo()
	product := &entity.Product{
		ID:        "product-1",
		ProductID: "P-1001",
		Name:      "Arroz premium",
		Quantity:  50,
		Status:    entity.StatusActive,
	}
	require.NoError(t, productRepo.Create(product))
	repo := &fakeStockOutRepo{}
	return usecase.NewStockOutUseCase(repo, productRepo), repo, product
}

func TestStockOutLogCreate_OK(t *testing.T) {
	uc, repo, product := newStockOutFixture(t)

	out, err := uc.Create("user-1", dto.CreateStockOutRequest{
		Product:  product.ID,
		Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, product.ID, out.Product)
	assert.Equal(t, product.Name, out.ProductName)
	assert.Equal(t, 5, out.Quantity)
	assert.Equal(t, "user-1", out.RecordedBy, "debe registrarse el usuario de la sesión")
	assert.False(t, out.Timestamp.IsZero(), "sin timestamp explícito se usa ahora")

	require.Len(t, repo.records, 1)
}

func TestStockOutLogCreate_TimestampExplicito(t *testing.T) {
	uc, _, product := newStockOutFixture(t)

	ts := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	out, err := uc.Create("user-1", dto.CreateStockOutRequest{
		Product:   product.ID,
		Quantity:  2,
		Timestamp: &ts,
	})
	require.NoError(t, err)
	assert.True(t, ts.Equal(out.Timestamp))
}

func TestStockOutLogCreate_Invalidos(t *testing.T) {
	uc, _, product := newStockOutFixture(t)

	_, err := uc.Create("user-1", dto.CreateStockOutRequest{Product: product.ID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad no positiva debe rechazarse")

	_, err = uc.Create("user-1", dto.CreateStockOutRequest{Product: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "producto que no resuelve debe rechazarse")
}

func TestStockOutLogList_MasRecientePrimero(t *testing.T) {
	uc, _, product := newStockOutFixture(t)

	old := time.Now().Add(-2 * time.Hour)
	recent := time.Now().Add(-time.Minute)
	_, err := uc.Create("user-1", dto.CreateStockOutRequest{Product: product.ID, Quantity: 1, Timestamp: &old})
	require.NoError(t, err)
	_, err = uc.Create("user-1", dto.CreateStockOutRequest{Product: product.ID, Quantity: 2, Timestamp: &recent})
	require.NoError(t, err)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].Quantity, "la salida más reciente debe ir primero")
}
