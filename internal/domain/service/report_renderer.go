// Package service declares collaborators implemented by the infra layer.
package service

import "salesboard/internal/domain/entity"

// PDFRenderer formats a dashboard summary as a PDF document.
type PDFRenderer interface {
	RenderPDF(summary *entity.DashboardSummary) ([]byte, error)
}

// SpreadsheetRenderer formats a dashboard summary as an XLSX workbook.
type SpreadsheetRenderer interface {
	RenderXLSX(summary *entity.DashboardSummary) ([]byte, error)
}
