// Package pdf genera el reporte de inventario en PDF (tabla de productos con
// proveedor, cantidad, estado y precio) usando Maroto v2.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/dcastano/almacen-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoReportGenerator genera el reporte de inventario con Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(_ context.Context, appName string, products []dto.ProductResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor(appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(appName, len(products)))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF de inventario: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(appName string, total int) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de inventario", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New(appName, props.Text{Top: 7, Size: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("2006-01-02 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d productos", total), props.Text{
				Top: 5, Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorWhite, Top: 1.5}
	cell := props.Cell{BackgroundColor: colorPrimary}
	return row.New(7).Add(
		col.New(2).Add(text.New("Código", header)).WithStyle(&cell),
		col.New(3).Add(text.New("Nombre", header)).WithStyle(&cell),
		col.New(1).Add(text.New("Cant.", header)).WithStyle(&cell),
		col.New(1).Add(text.New("Unidad", header)).WithStyle(&cell),
		col.New(2).Add(text.New("Estado", header)).WithStyle(&cell),
		col.New(1).Add(text.New("Precio", header)).WithStyle(&cell),
		col.New(2).Add(text.New("Proveedor", header)).WithStyle(&cell),
	)
}

func productRow(p dto.ProductResponse) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	return row.New(6).Add(
		col.New(2).Add(text.New(p.ProductID, cell)),
		col.New(3).Add(text.New(p.Name, cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.Quantity), cell)),
		col.New(1).Add(text.New(p.Unit, cell)),
		col.New(2).Add(text.New(p.Status, cell)),
		col.New(1).Add(text.New(p.Price.StringFixed(2), cell)),
		col.New(2).Add(text.New(p.SupplierName, cell)),
	)
}
