package database

import (
	"sort"

	"github.com/fundflow/backend/errs"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Filters is an equality conjunction over entity attributes, keyed by column
// name. Keys are validated against the entity's declared attributes before a
// query is built; an unknown key is rejected, never silently dropped.
type Filters map[string]any

// sortedKeys returns filter keys in a fixed order so generated SQL is
// deterministic for a given filter set.
func (f Filters) sortedKeys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// validate checks every key against the entity's column set.
func (f Filters) validate(entity string, columns map[string]bool) error {
	for key := range f {
		if !columns[key] {
			return errs.NewUnknownFieldError(entity, key)
		}
	}
	return nil
}

// apply adds one WHERE clause per filter key. Callers must have validated
// the keys first; column names never come from unchecked input.
func (f Filters) apply(query *gorm.DB) *gorm.DB {
	for _, key := range f.sortedKeys() {
		query = query.Where(key+" = ?", f[key])
	}
	return query
}

// columnSet extracts the set of database column names from a parsed schema,
// excluding relationship fields.
func columnSet(sch *schema.Schema) map[string]bool {
	columns := make(map[string]bool, len(sch.DBNames))
	for _, name := range sch.DBNames {
		columns[name] = true
	}
	return columns
}
