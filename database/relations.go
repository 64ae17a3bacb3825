package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundflow/backend/errs"
	"gorm.io/gorm"
)

// RelRepo extends Repo with eager loading of related entities. The set of
// relations is declared once at construction and applied to every fetch, so
// callers never issue follow-up queries for configured relations.
type RelRepo[T any] struct {
	*Repo[T]
	relations []string
}

func newRelRepo[T any](db *gorm.DB, src txSource, relations ...string) (*RelRepo[T], error) {
	base, err := newRepo[T](db, src)
	if err != nil {
		return nil, err
	}
	for _, name := range relations {
		if _, ok := base.schema.Relationships.Relations[name]; !ok {
			return nil, errs.NewInternalError(
				fmt.Sprintf("%q is not a relation of %s", name, base.entity))
		}
	}
	return &RelRepo[T]{Repo: base, relations: relations}, nil
}

func (r *RelRepo[T]) preload(query *gorm.DB) *gorm.DB {
	for _, relation := range r.relations {
		query = query.Preload(relation)
	}
	return query
}

// GetByID fetches the entity with its configured relations attached, or
// (nil, nil) when no row has that id.
func (r *RelRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.preload(r.db(ctx)).Where("id = ?", id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("get", r.entity, err)
	}
	return &entity, nil
}

// FindOne returns at most one matching entity with its configured relations
// attached, or (nil, nil).
func (r *RelRepo[T]) FindOne(ctx context.Context, filters Filters) (*T, error) {
	if err := filters.validate(r.entity, r.columns); err != nil {
		return nil, err
	}
	var entity T
	err := filters.apply(r.preload(r.db(ctx))).Order("id").First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", r.entity, err)
	}
	return &entity, nil
}

// FindMany pages matching entities with their configured relations attached.
func (r *RelRepo[T]) FindMany(ctx context.Context, filters Filters, offset, limit int) ([]*T, error) {
	if offset < 0 {
		return nil, errs.NewInvalidPaginationError("offset must be non-negative")
	}
	if limit <= 0 {
		return nil, errs.NewInvalidPaginationError("limit must be positive")
	}
	if err := filters.validate(r.entity, r.columns); err != nil {
		return nil, err
	}
	entities := []*T{}
	err := filters.apply(r.preload(r.db(ctx))).Order("id").Offset(offset).Limit(limit).Find(&entities).Error
	if err != nil {
		return nil, errs.NewDatabaseError("list", r.entity, err)
	}
	return entities, nil
}
