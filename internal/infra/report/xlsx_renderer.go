package report

import (
	"time"

	"salesboard/internal/domain/entity"
	"salesboard/internal/domain/service"
	"salesboard/internal/errors"
	"salesboard/internal/util"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Resumo"
	productsSheet = "Mais vendidos"
	defaultSheet  = "Sheet1"
)

// XLSXRenderer implements service.SpreadsheetRenderer with excelize.
type XLSXRenderer struct{}

// NewXLSXRenderer creates the renderer.
func NewXLSXRenderer() service.SpreadsheetRenderer {
	return &XLSXRenderer{}
}

// RenderXLSX writes the totals to one sheet and the best sellers to another.
func (r *XLSXRenderer) RenderXLSX(summary *entity.DashboardSummary) (_ []byte, err error) {
	if summary == nil {
		return nil, ErrNilSummary
	}

	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "failed to close workbook")
		}
	}()

	if err := f.SetSheetName(defaultSheet, summarySheet); err != nil {
		return nil, errors.Wrap(err, "failed to rename sheet")
	}

	revenue := util.MoneyFloat(summary.Revenue)
	rows := [][]any{
		{"Indicador", "Valor"},
		{"Total de clientes", summary.TotalClients},
		{"Total de produtos", summary.TotalProducts},
		{"Total de vendas", summary.TotalSales},
		{"Receita total (R$)", revenue},
		{"Atualizado em", summary.UpdatedAt.UTC().Format(time.RFC3339)},
	}
	if err := writeRows(f, summarySheet, rows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(productsSheet); err != nil {
		return nil, errors.Wrap(err, "failed to create sheet")
	}

	productRows := make([][]any, 0, len(summary.TopProducts)+1)
	productRows = append(productRows, []any{"Produto", "Total vendido"})
	for _, p := range summary.TopProducts {
		productRows = append(productRows, []any{p.Name, p.Quantity})
	}
	if err := writeRows(f, productsSheet, productRows); err != nil {
		return nil, err
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   "Relatório de Produtos e Vendas",
		Created: summary.UpdatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to set workbook properties")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}

	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "failed to resolve cell")
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "failed to write row %d of %s", i+1, sheet)
		}
	}

	return nil
}
