// Package report renders dashboard summaries into downloadable files.
package report

import (
	"bytes"
	"fmt"

	"salesboard/config"
	"salesboard/internal/domain/entity"
	"salesboard/internal/domain/service"
	"salesboard/internal/errors"

	"github.com/go-pdf/fpdf"
)

// Layout in points from the top-left corner of an A4 page.
const (
	pdfMarginLeft   = 50.0
	pdfItemIndent   = 60.0
	pdfTitleY       = 50.0
	pdfTotalsY      = 100.0
	pdfHeaderY      = 200.0
	pdfLineHeight   = 20.0
	pdfBottomMargin = 50.0

	pdfFontFamily = "Helvetica"
)

// ErrNilSummary is returned when asked to render nothing.
var ErrNilSummary = errors.New("dashboard summary is nil")

// PDFRenderer implements service.PDFRenderer with go-pdf/fpdf.
type PDFRenderer struct {
	compress bool
}

// NewPDFRenderer creates the renderer. Compression follows report.compress.
func NewPDFRenderer(cfg *config.Config) service.PDFRenderer {
	compress := true
	if cfg != nil && cfg.Report != nil {
		compress = cfg.Report.Compress
	}

	return &PDFRenderer{compress: compress}
}

// RenderPDF lays out the summary on as many A4 pages as the best sellers need.
// Output is byte-stable for the same summary.
func (r *PDFRenderer) RenderPDF(summary *entity.DashboardSummary) ([]byte, error) {
	if summary == nil {
		return nil, ErrNilSummary
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(summary.UpdatedAt)
	pdf.SetModificationDate(summary.UpdatedAt)
	pdf.SetTitle("Relatório de Produtos e Vendas", true)
	pdf.SetAutoPageBreak(false, pdfBottomMargin)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, pageHeight := pdf.GetPageSize()

	pdf.AddPage()

	pdf.SetFont(pdfFontFamily, "B", 16)
	pdf.Text(pdfMarginLeft, pdfTitleY, tr("Relatório de Produtos e Vendas"))

	pdf.SetFont(pdfFontFamily, "", 12)
	totals := []string{
		fmt.Sprintf("Total de clientes: %d", summary.TotalClients),
		fmt.Sprintf("Total de produtos: %d", summary.TotalProducts),
		fmt.Sprintf("Total de vendas: %d", summary.TotalSales),
		fmt.Sprintf("Receita total: R$ %s", summary.Revenue.StringFixed(2)),
	}
	for i, line := range totals {
		pdf.Text(pdfMarginLeft, pdfTotalsY+float64(i)*pdfLineHeight, tr(line))
	}

	pdf.Text(pdfMarginLeft, pdfHeaderY, tr("Produtos mais vendidos:"))

	y := pdfHeaderY + pdfLineHeight
	for _, product := range summary.TopProducts {
		if y > pageHeight-pdfBottomMargin {
			pdf.AddPage()
			pdf.SetFont(pdfFontFamily, "", 12)
			y = pdfTitleY
		}

		pdf.Text(pdfItemIndent, y, tr(fmt.Sprintf("%s - %d vendidos", product.Name, product.Quantity)))
		y += pdfLineHeight
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write pdf")
	}

	return buf.Bytes(), nil
}
