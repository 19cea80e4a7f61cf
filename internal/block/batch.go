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

// Package block holds the ingest core's install-time types: Batch (a
// capacity-bounded FlatBuffer), BlockSignature and BatchBlock (identity and
// container of an installed block), and BlockManager (the process-wide
// registry blocks are installed into).
package block

import (
	"github.com/Gutomata/nebula/internal/flatbuf"
	"github.com/Gutomata/nebula/internal/pipeline"
	"github.com/Gutomata/nebula/internal/schema"
)

// Batch fronts a FlatBuffer with a capacity. The ingest pipeline appends
// rows until the batch is full, then hands it off as the payload of a
// BatchBlock; it is single-writer and not safe for concurrent Add calls.
type Batch struct {
	buf      *flatbuf.FlatBuffer
	capacity int
}

// NewBatch returns an empty Batch over s with the given row capacity.
func NewBatch(s *schema.Schema, capacity int) *Batch {
	return &Batch{buf: flatbuf.New(s), capacity: capacity}
}

// Add appends a row to the batch's underlying FlatBuffer.
func (b *Batch) Add(r pipeline.Row) error {
	return b.buf.Add(r)
}

// Rows returns the number of rows currently held.
func (b *Batch) Rows() int { return b.buf.Len() }

// Capacity returns the configured row capacity.
func (b *Batch) Capacity() int { return b.capacity }

// Full reports whether the batch has reached its capacity.
func (b *Batch) Full() bool { return b.buf.Len() >= b.capacity }

// Schema returns the batch's row schema.
func (b *Batch) Schema() *schema.Schema { return b.buf.Schema() }

// Row returns a read-only view over row i.
func (b *Batch) Row(i int) pipeline.Row { return b.buf.Row(i) }

// FlatBuffer exposes the underlying buffer for query access, mirroring the
// source's "Batch fronts rows to queries" role.
func (b *Batch) FlatBuffer() *flatbuf.FlatBuffer { return b.buf }
