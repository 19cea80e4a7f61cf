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

package block

import "sync"

// Manager is the process-wide registry of installed blocks. It is shared
// across concurrently running specs; all mutation is serialized by an
// internal lock so callers never observe a partially-applied Add or
// RemoveSameSpec. A plain sync.RWMutex over a slice is deliberately chosen
// over a TTL-style cache: installed blocks do not expire, they are only
// ever removed explicitly, by RemoveSameSpec or a same-spec Swap.
type Manager struct {
	mu     sync.RWMutex
	blocks []*BatchBlock
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add installs every block in blocks. Duplicate signatures are not
// rejected: the Swap loader is expected to have already removed same-spec
// blocks, so duplicates should not arise in normal use.
func (m *Manager) Add(blocks []*BatchBlock) {
	if len(blocks) == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blocks = append(m.blocks, blocks...)
}

// RemoveSameSpec removes every installed block sharing (TableName, SpecID)
// with sig, returning the count removed.
func (m *Manager) RemoveSameSpec(sig Signature) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeSameSpecLocked(sig)
}

func (m *Manager) removeSameSpecLocked(sig Signature) int {
	kept := m.blocks[:0:0]
	removed := 0
	for _, b := range m.blocks {
		if b.Signature.SameSpec(sig) {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	m.blocks = kept
	return removed
}

// Swap atomically removes every block sharing a spec with spec, then
// installs blocks in their place. Holding the lock across both steps is
// what makes a Swap loader's replacement atomic from the point of view of
// any other spec running concurrently against this Manager: no observer
// can see the window between the removal and the install.
//
// spec identifies the (TableName, SpecID) being replaced independently of
// blocks, so a spec that legitimately produces zero blocks (an empty
// source file) still clears whatever it is replacing rather than leaving
// a stale prior run installed — the install step is simply a no-op append
// in that case.
func (m *Manager) Swap(spec Signature, blocks []*BatchBlock) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeSameSpecLocked(Signature{TableName: spec.TableName, SpecID: spec.SpecID})
	if len(blocks) > 0 {
		m.blocks = append(m.blocks, blocks...)
	}
}

// Enumerate returns every installed block whose table name equals
// tableName, in installation order. An empty tableName matches every
// block.
func (m *Manager) Enumerate(tableName string) []*BatchBlock {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*BatchBlock, 0, len(m.blocks))
	for _, b := range m.blocks {
		if tableName == "" || b.Signature.TableName == tableName {
			out = append(out, b)
		}
	}
	return out
}
