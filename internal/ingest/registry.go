// Copyright (C) 2025 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package ingest

import (
	"sync"

	"github.com/Gutomata/nebula/internal/schema"
)

// Table is a weak, name-indexed handle the ingest pipeline enrolls into a
// Registry. It does not own the blocks produced against it and must not be
// kept alive beyond the life of those blocks.
type Table struct {
	Name        string
	Schema      *schema.Schema
	ColumnProps map[string]string
}

// Registry is the table registry the external query layer consults by
// name. Enrollment is idempotent: the first writer for a name wins and
// later enrollments of the same name are no-ops, even if their schema
// differs.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*Table)}
}

// Enroll registers t by name if no table is registered under that name yet.
func (r *Registry) Enroll(t *Table) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tables[t.Name]; ok {
		return
	}
	r.tables[t.Name] = t
}

// Lookup returns the table registered under name, if any.
func (r *Registry) Lookup(name string) (*Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[name]
	return t, ok
}
