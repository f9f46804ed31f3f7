package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/personnalite/estoque-api/internal/domain/entity"
	"github.com/personnalite/estoque-api/internal/domain/enum"
	"github.com/personnalite/estoque-api/pkg/apperror"
)

// Fixed A4 layout, all coordinates in millimeters.
const (
	leftX      = 20.0
	indentX    = 25.0
	methodX    = 30.0
	rightX     = 190.0
	titleY     = 30.0
	dateY      = 45.0
	ruleY      = 55.0
	summaryY   = 70.0
	countY     = 85.0
	totalY     = 95.0
	breakdownY = 115.0
	methodsY   = 130.0

	lineStep  = 10.0
	entryStep = 20.0
	pairStep  = 8.0

	// A detail entry that would start past this boundary goes on a new page.
	pageBreakY = 270.0
	topResetY  = 30.0
	footerY    = 285.0
)

const (
	dateLayout = "02/01/2006"
	timeLayout = "15:04:05"
)

// Document is a rendered sales report.
type Document struct {
	Bytes    []byte
	Pages    int
	Filename string
}

// Renderer turns a report snapshot into the fixed-layout PDF document.
type Renderer struct {
	title  string
	footer string

	// uncompressed leaves content streams readable; tests use it to
	// inspect the stamped footer text.
	uncompressed bool
}

// NewRenderer creates a renderer with the default title and footer labels.
func NewRenderer() *Renderer {
	return &Renderer{
		title:  "RELATÓRIO DE VENDAS",
		footer: "Sistema de Controle de Estoque",
	}
}

// Render produces the paginated document for a snapshot.
//
// Rendering is two-phase: the content pass writes every section top to
// bottom, adding pages as the cursor overflows; only then, with the final
// page count known, the finalization pass revisits every page to stamp its
// footer. The page count cannot be known during the content pass, so a
// single streaming pass could never write correct footers.
func (r *Renderer) Render(snap entity.ReportSnapshot) (*Document, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	if r.uncompressed {
		pdf.SetCompression(false)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	r.writeContent(pdf, tr, snap)
	r.stampFooters(pdf, tr)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperror.NewRenderError("Falha ao gerar o relatório: " + err.Error())
	}

	return &Document{
		Bytes:    buf.Bytes(),
		Pages:    pdf.PageCount(),
		Filename: fmt.Sprintf("relatorio-vendas-%s.pdf", snap.GeneratedAt.Format("2006-01-02")),
	}, nil
}

// writeContent is the content-emission pass.
func (r *Renderer) writeContent(pdf *gofpdf.Fpdf, tr func(string) string, snap entity.ReportSnapshot) {
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(leftX, titleY, tr(r.title))

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(leftX, dateY, tr(fmt.Sprintf("Data: %s - %s",
		snap.GeneratedAt.Format(dateLayout), snap.GeneratedAt.Format(timeLayout))))

	// Separator rule
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(leftX, ruleY, rightX, ruleY)

	// General summary
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(leftX, summaryY, tr("RESUMO GERAL"))

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(leftX, countY, tr(fmt.Sprintf("Total de Vendas: %d", len(snap.Sales))))
	pdf.Text(leftX, totalY, tr("Faturamento Total: "+snap.Totals.General.String()))

	// Breakdown by payment method
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(leftX, breakdownY, tr("DETALHAMENTO POR FORMA DE PAGAMENTO"))

	pdf.SetFont("Helvetica", "", 11)
	lines := []struct {
		label  string
		amount string
	}{
		{enum.PaymentCash.String(), snap.Totals.Dinheiro.String()},
		{enum.PaymentDebit.String(), snap.Totals.Debito.String()},
		{enum.PaymentCredit.String(), snap.Totals.Credito.String()},
		{"PIX", snap.Totals.Pix.String()},
	}
	y := methodsY
	for _, line := range lines {
		pdf.Text(methodX, y, tr(line.label+": "+line.amount))
		y += lineStep
	}
	y += lineStep

	// Detailed sales, in ledger order
	if len(snap.Sales) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(leftX, y, tr("VENDAS DETALHADAS"))
	y += entryStep

	pdf.SetFont("Helvetica", "", 10)
	for i, sale := range snap.Sales {
		if y > pageBreakY {
			pdf.AddPage()
			y = topResetY
		}

		pdf.Text(indentX, y, tr(fmt.Sprintf("%d. %s - %s", i+1, sale.Date, sale.ProductName)))
		pdf.Text(indentX, y+pairStep, tr(fmt.Sprintf("   Valor: %s | Pagamento: %s", sale.Value, sale.PaymentMethod)))
		y += entryStep
	}
}

// stampFooters is the finalization pass: it runs only after the content
// pass so the total page count is final.
func (r *Renderer) stampFooters(pdf *gofpdf.Fpdf, tr func(string) string) {
	total := pdf.PageCount()
	pdf.SetFont("Helvetica", "", 8)
	for page := 1; page <= total; page++ {
		pdf.SetPage(page)
		pdf.Text(leftX, footerY, tr(fmt.Sprintf("%s - Página %d de %d", r.footer, page, total)))
	}
}
