// Package pdf implementa la generación del recap de inventario de activos por
// ubicación.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Ubicación (nombre + código) │ Fecha de emisión      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Serial | Producto | Condición | Compra | Precio      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de unidades por condición                    │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/tu-usuario/sarpras-api/internal/application/report"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateAssetReport genera el PDF del inventario de la ubicación y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateAssetReport(
	_ context.Context,
	location *entity.Location,
	rows []report.AssetRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventario de Activos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(location))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRows(rows)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: ubicación (izq) y fecha de emisión (der).
func headerRow(location *entity.Location) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New("Inventario de Activos", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (%s)", location.Name, location.Code), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 9, Top: 1, Align: align.Right, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Edificio %s, Piso %s", location.Building, location.Floor), props.Text{
				Size: 9, Top: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1.5}
	cell := props.Cell{BackgroundColor: colorPrimary}
	return row.New(7).Add(
		col.New(3).Add(text.New("Serial", header)).WithStyle(&cell),
		col.New(4).Add(text.New("Producto", header)).WithStyle(&cell),
		col.New(2).Add(text.New("Condición", header)).WithStyle(&cell),
		col.New(1).Add(text.New("Compra", header)).WithStyle(&cell),
		col.New(2).Add(text.New("Precio Est.", header)).WithStyle(&cell),
	)
}

func tableDetailRow(r report.AssetRow) core.Row {
	body := props.Text{Size: 8, Top: 1}
	purchase := "-"
	if r.Asset.PurchaseDate != nil {
		purchase = r.Asset.PurchaseDate.Format("02/01/2006")
	}
	price := "-"
	if r.Asset.EstimatedPrice != nil {
		price = r.Asset.EstimatedPrice.StringFixed(2)
	}
	return row.New(5).Add(
		col.New(3).Add(text.New(r.SerialNumber, body)),
		col.New(4).Add(text.New(fmt.Sprintf("%s (%s)", r.ProductName, r.ProductCode), body)),
		col.New(2).Add(text.New(r.Condition, body)),
		col.New(1).Add(text.New(purchase, body)),
		col.New(2).Add(text.New(price, props.Text{Size: 8, Top: 1, Align: align.Right})),
	)
}

// summaryRows: total general y desglose de unidades por condición.
func summaryRows(rows []report.AssetRow) []core.Row {
	byCondition := map[string]int{}
	for _, r := range rows {
		byCondition[r.Condition]++
	}
	out := []core.Row{
		row.New(7).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Total: %d unidades", len(rows)), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1.5,
			})),
		),
	}
	for _, c := range []string{entity.ConditionGood, entity.ConditionLightDamage, entity.ConditionHeavyDamage, entity.ConditionRepair} {
		if n, ok := byCondition[c]; ok {
			out = append(out, row.New(5).Add(
				col.New(12).Add(text.New(fmt.Sprintf("  %s: %d", c, n), props.Text{
					Size: 8, Top: 1, Color: colorGray,
				})),
			))
		}
	}
	return out
}
