package repository

import (
	"context"

	"salesboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for document persistence.
var (
	// ErrDocumentNotFound is returned when no document exists under the key.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDocumentStoreUnavailable is returned when the document store could not be reached at startup.
	ErrDocumentStoreUnavailable = errors.New("document store unavailable")
)

// DashboardRepository stores the summary document under entity.DashboardKey.
type DashboardRepository interface {
	// SaveDashboard upserts the summary, replacing the previous one.
	SaveDashboard(ctx context.Context, summary *entity.DashboardSummary) error

	// FindDashboard returns the stored summary or ErrDocumentNotFound.
	FindDashboard(ctx context.Context) (*entity.DashboardSummary, error)
}

// DocumentRepository reads and merge-writes free-form documents.
type DocumentRepository interface {
	// SetDocument merges values into the document stored under key, creating it when absent.
	SetDocument(ctx context.Context, collection, key string, values map[string]any) error

	// GetDocument returns the fields of the document stored under key or ErrDocumentNotFound.
	GetDocument(ctx context.Context, collection, key string) (map[string]any, error)
}
