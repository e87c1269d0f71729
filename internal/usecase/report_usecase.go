package usecase

import "context"

// Report is a rendered file ready to be downloaded
type Report struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportUsecase renders the stored dashboard into downloadable files
type ReportUsecase interface {
	// DashboardPDF renders the stored summary as PDF
	DashboardPDF(ctx context.Context) (*Report, error)

	// DashboardXLSX renders the stored summary as an XLSX workbook
	DashboardXLSX(ctx context.Context) (*Report, error)
}
