package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dcastano/almacen-api/internal/domain/entity"
)

// DeriveStatus es la única autoridad para los estados no-obsolete.
func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		want     string
	}{
		{"cantidad cero", 0, entity.StatusOutOfStock},
		{"cantidad uno", 1, entity.StatusLowStock},
		{"justo bajo el umbral", 9, entity.StatusLowStock},
		{"en el umbral", 10, entity.StatusActive},
		{"sobre el umbral", 11, entity.StatusActive},
		{"cantidad grande", 5000, entity.StatusActive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.DeriveStatus(tc.quantity))
		})
	}
}

func TestIsObsolete(t *testing.T) {
	p := &entity.Product{Status: entity.StatusObsolete}
	assert.True(t, p.IsObsolete())

	p.Status = entity.StatusActive
	assert.False(t, p.IsObsolete())
}
