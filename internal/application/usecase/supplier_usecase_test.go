package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/application/usecase"
	"github.com/dcastano/almacen-api/internal/domain"
)

func validSupplierRequest() dto.CreateSupplierRequest {
	return dto.CreateSupplierRequest{
		SupplierID: "SUP-101",
		Name:       "Distribuidora Andina",
		Contact:    "3001234567",
		Address:    "Calle 10 #20-30",
	}
}

func TestSupplierCreate_OK(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())

	out, err := uc.Create(validSupplierRequest())
	require.NoError(t, err)
	assert.Equal(t, "SUP-101", out.SupplierID)
	assert.NotEmpty(t, out.ID)
}

// SupplierID se normaliza a mayúsculas antes de validar y persistir.
func TestSupplierCreate_NormalizaSupplierID(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())

	in := validSupplierRequest()
	in.SupplierID = "  sup-204 "
	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "SUP-204", out.SupplierID)
}

func TestSupplierCreate_PatronSupplierIDInvalido(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())

	for _, bad := range []string{"SUP-12", "SUP-123456", "PROV-123", "SUP-12a", "123"} {
		in := validSupplierRequest()
		in.SupplierID = bad
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "supplierId %q debe rechazarse", bad)
	}
}

func TestSupplierCreate_ContactInvalido(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())

	for _, bad := range []string{"300123456", "30012345678", "30012345ab", "+573001234"} {
		in := validSupplierRequest()
		in.Contact = bad
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "contact %q debe rechazarse", bad)
	}
}

func TestSupplierCreate_Duplicado(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())

	_, err := uc.Create(validSupplierRequest())
	require.NoError(t, err)

	_, err = uc.Create(validSupplierRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// El duplicado también aplica tras la normalización de mayúsculas.
	in := validSupplierRequest()
	in.SupplierID = "sup-101"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSupplierList(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())
	_, err := uc.Create(validSupplierRequest())
	require.NoError(t, err)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "SUP-101", list[0].SupplierID)
}
