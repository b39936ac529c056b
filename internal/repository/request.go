package repository

import (
	"context"

	"quickcal/internal/model"
)

// RequestRepository persists the extraction request history.
type RequestRepository interface {
	// Save inserts the record or replaces the stored row with the same request ID.
	Save(ctx context.Context, rec *model.RequestRecord) error

	// List returns the most recent records first together with the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.RequestRecord], error)
}

// NopRequestRepository discards writes and lists nothing. It is used when no
// database is configured.
type NopRequestRepository struct{}

var _ RequestRepository = NopRequestRepository{}

func (NopRequestRepository) Save(context.Context, *model.RequestRecord) error { return nil }

func (NopRequestRepository) List(context.Context, PageQuery) (*PageResult[model.RequestRecord], error) {
	return &PageResult[model.RequestRecord]{Items: []model.RequestRecord{}}, nil
}
