// Package pdf genera el documento de una orden de compra para enviarlo al
// proveedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del emisor     │  PURCHASE ORDER + N° + Fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: nombre             │  ESTADO / ETA               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Categoría | Lead time | Cant. | Costo | Total │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	│  FOOTER: QR con el ID de la PO + leyenda                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Supply-api/internal/application/document"
)

var _ document.PurchaseOrderPDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa document.PurchaseOrderPDFGenerator con Maroto v2.
type MarotoPDFGenerator struct {
	issuer string
}

// NewMarotoPDFGenerator construye el generador; issuer aparece en la cabecera.
func NewMarotoPDFGenerator(issuer string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{issuer: issuer}
}

// GeneratePurchaseOrderPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePurchaseOrderPDF(_ context.Context, doc document.PurchaseOrderDocument) ([]byte, error) {
	if doc.PO == nil || doc.Sku == nil {
		return nil, fmt.Errorf("pdf: PO o SKU vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Purchase Order "+doc.PO.ID, true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow(), itemRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(doc.Total))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(doc.PO.ID))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func (g *MarotoPDFGenerator) headerRow(doc document.PurchaseOrderDocument) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.issuer, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(5).Add(
			text.New("PURCHASE ORDER", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.PO.ID, props.Text{Size: 7, Align: align.Right, Top: 7}),
			text.New("Date: "+doc.PO.CreatedAt.Format("2006-01-02"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func supplierRow(doc document.PurchaseOrderDocument) core.Row {
	supplier := doc.PO.SupplierID
	if doc.PO.Supplier != nil {
		supplier = doc.PO.Supplier.Name
	}
	eta := "-"
	if doc.PO.ETA != nil {
		eta = doc.PO.ETA.Format("2006-01-02")
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("SUPPLIER", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(supplier, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
		col.New(5).Add(
			text.New("Status: "+doc.PO.Status, props.Text{Size: 8, Align: align.Right, Top: 1}),
			text.New("ETA: "+eta, props.Text{Size: 8, Align: align.Right, Top: 6, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 4, align.Left),
		h("Category", 2, align.Left),
		h("Lead time", 1, align.Center),
		h("Qty", 1, align.Center),
		h("Unit cost", 2, align.Right),
		h("Line total", 2, align.Right),
	)
}

func itemRow(doc document.PurchaseOrderDocument) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(7).Add(
		cell(doc.Sku.Name, 4, align.Left),
		cell(doc.Sku.Category, 2, align.Left),
		cell(strconv.Itoa(doc.Sku.LeadTime)+" d", 1, align.Center),
		cell(strconv.Itoa(doc.PO.Quantity), 1, align.Center),
		cell(money(doc.Sku.Cost), 2, align.Right),
		cell(money(doc.Total), 2, align.Right),
	)
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(2).Add(text.New(money(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func footerRow(poID string) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(poID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Reference this purchase order ID on every shipment and invoice.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New(poID, props.Text{Style: fontstyle.Bold, Size: 9, Top: 12, Left: 3, Color: colorPrimary}),
		),
	)
}

// money formatea con dos decimales: 5.75 → "$5.75".
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
