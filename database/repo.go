package database

import (
	"context"
	"errors"
	"sync"

	"github.com/fundflow/backend/errs"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// schemaCache is shared by every repository so each entity schema is parsed
// once per process.
var schemaCache = &sync.Map{}

// txSource hands a repository the transaction it is currently bound to. The
// unit of work implements this so repositories follow it across an explicit
// commit-and-continue.
type txSource interface {
	handle() *gorm.DB
}

// Repo is a uniform CRUD surface over one entity kind. Instances are owned
// by a unit of work and must not outlive it.
type Repo[T any] struct {
	src     txSource
	entity  string
	schema  *schema.Schema
	columns map[string]bool
}

func newRepo[T any](db *gorm.DB, src txSource) (*Repo[T], error) {
	sch, err := schema.Parse(new(T), schemaCache, db.NamingStrategy)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to parse entity schema", err)
	}
	return &Repo[T]{
		src:     src,
		entity:  sch.Table,
		schema:  sch,
		columns: columnSet(sch),
	}, nil
}

func (r *Repo[T]) db(ctx context.Context) *gorm.DB {
	return r.src.handle().WithContext(ctx)
}

// Create inserts the entity and backfills its generated identifier. The row
// is visible inside the owning transaction but not durable until commit.
func (r *Repo[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if err := r.db(ctx).Create(entity).Error; err != nil {
		return nil, errs.NewDatabaseError("create", r.entity, err)
	}
	return entity, nil
}

// GetByID returns the entity, or (nil, nil) when no row has that id.
func (r *Repo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.db(ctx).Where("id = ?", id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("get", r.entity, err)
	}
	return &entity, nil
}

// FindOne returns at most one entity matching the filters, or (nil, nil).
func (r *Repo[T]) FindOne(ctx context.Context, filters Filters) (*T, error) {
	if err := filters.validate(r.entity, r.columns); err != nil {
		return nil, err
	}
	var entity T
	err := filters.apply(r.db(ctx)).Order("id").First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", r.entity, err)
	}
	return &entity, nil
}

// FindMany returns a page of matching entities in ascending id order, which
// is creation order. Offset must be non-negative and limit positive; a
// violation is a caller contract error, not a silent clamp.
func (r *Repo[T]) FindMany(ctx context.Context, filters Filters, offset, limit int) ([]*T, error) {
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
	err := filters.apply(r.db(ctx)).Order("id").Offset(offset).Limit(limit).Find(&entities).Error
	if err != nil {
		return nil, errs.NewDatabaseError("list", r.entity, err)
	}
	return entities, nil
}

// Update applies exactly the supplied fields and returns the updated entity,
// or (nil, nil) when no row has that id. An empty field set is a read-only
// no-op. The identifier is immutable.
func (r *Repo[T]) Update(ctx context.Context, id int64, fields Filters) (*T, error) {
	entity, err := r.GetByID(ctx, id)
	if err != nil || entity == nil {
		return entity, err
	}
	if len(fields) == 0 {
		return entity, nil
	}
	if _, ok := fields["id"]; ok {
		return nil, errs.NewInvalidFieldError("id", "identifier cannot be changed")
	}
	if err := fields.validate(r.entity, r.columns); err != nil {
		return nil, err
	}
	if err := r.db(ctx).Model(entity).Updates(map[string]any(fields)).Error; err != nil {
		return nil, errs.NewDatabaseError("update", r.entity, err)
	}
	return entity, nil
}

// Delete removes the entity and reports whether a row was actually removed.
// Deleting an already-deleted id yields (false, nil), never an error.
func (r *Repo[T]) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return false, errs.NewDatabaseError("delete", r.entity, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Count returns the number of entities matching the filters.
func (r *Repo[T]) Count(ctx context.Context, filters Filters) (int64, error) {
	if err := filters.validate(r.entity, r.columns); err != nil {
		return 0, err
	}
	var count int64
	err := filters.apply(r.db(ctx).Model(new(T))).Count(&count).Error
	if err != nil {
		return 0, errs.NewDatabaseError("count", r.entity, err)
	}
	return count, nil
}

// Exists reports whether any entity matches the filters.
func (r *Repo[T]) Exists(ctx context.Context, filters Filters) (bool, error) {
	count, err := r.Count(ctx, filters)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
