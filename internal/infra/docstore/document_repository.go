package docstore

import (
	"context"

	"salesboard/internal/domain/repository"
	"salesboard/internal/errors"

	gcdocstore "gocloud.dev/docstore"
	"gocloud.dev/gcerrors"
)

// documentRepository implements repository.DocumentRepository over map documents.
type documentRepository struct {
	store *Store
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(store *Store) repository.DocumentRepository {
	return &documentRepository{store: store}
}

// SetDocument updates the given fields in place and creates the document when it does not exist yet.
func (repo *documentRepository) SetDocument(ctx context.Context, collection, key string, values map[string]any) error {
	coll, err := repo.store.Collection(ctx, collection)
	if err != nil {
		return err
	}

	mods := make(gcdocstore.Mods, len(values))
	for field, value := range values {
		mods[gcdocstore.FieldPath(field)] = value
	}

	err = coll.Update(ctx, map[string]any{KeyField: key}, mods)
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return errors.Wrapf(err, "failed to update document %s", key)
	}

	doc := make(map[string]any, len(values)+1)
	for field, value := range values {
		doc[field] = value
	}
	doc[KeyField] = key

	err = coll.Create(ctx, doc)
	if gcerrors.Code(err) == gcerrors.AlreadyExists {
		// Lost a race with another writer, merge into its document.
		err = coll.Update(ctx, map[string]any{KeyField: key}, mods)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to create document %s", key)
	}

	return nil
}

// GetDocument returns the document fields without the key and revision bookkeeping.
func (repo *documentRepository) GetDocument(ctx context.Context, collection, key string) (map[string]any, error) {
	coll, err := repo.store.Collection(ctx, collection)
	if err != nil {
		return nil, err
	}

	doc := map[string]any{KeyField: key}
	if err := coll.Get(ctx, doc); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrapf(err, "failed to get document %s", key)
	}

	delete(doc, KeyField)
	delete(doc, gcdocstore.DefaultRevisionField)

	return doc, nil
}
