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

// Package testloader synthesizes blocks for tables whose loader is the
// configured test-loader name, standing in for a real fetch+ingest run so
// the pipeline's downstream consumers can be exercised without a file.
package testloader

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Gutomata/nebula/internal/block"
	"github.com/Gutomata/nebula/internal/pipeline"
	"github.com/Gutomata/nebula/internal/pipeline/wkk"
	"github.com/Gutomata/nebula/internal/schema"
	"github.com/Gutomata/nebula/internal/tablespec"
)

// Parallelism reports the hardware parallelism the test loader windows
// its synthetic blocks across. It is a var so tests can pin it to a fixed
// value instead of depending on the host's core count.
var Parallelism = func() int { return runtime.GOMAXPROCS(0) }

// Generate synthesizes N blocks for table, one per window of
// [start, start+3600*table.MaxHr) where N is Parallelism() and start is
// table.TimeSpec.UnixTimeValue. No file is read; each block carries a
// single placeholder row so downstream readers see a well-formed,
// non-empty Batch.
func Generate(table *tablespec.TableSpec, specID string) []*block.BatchBlock {
	n := Parallelism()
	if n < 1 {
		n = 1
	}

	start := table.TimeSpec.UnixTimeValue
	end := start + 3600*table.MaxHr
	width := (end - start) / int64(n)

	finalSchema := table.FinalSchema()

	// Each window's block is independent of the others, so build them
	// concurrently across the same N workers the window count is derived
	// from; every goroutine writes to its own slice index, so no further
	// synchronization is needed.
	blocks := make([]*block.BatchBlock, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			windowStart := start + int64(i)*width
			windowEnd := windowStart + width
			if i == n-1 {
				// absorb any remainder from integer division into the last window
				windowEnd = end
			}

			batch := block.NewBatch(finalSchema, 1)
			row := placeholderRow(finalSchema, windowStart)
			if err := batch.Add(row); err != nil {
				return err // placeholder rows are constructed to satisfy finalSchema; should not happen
			}

			sig := block.Signature{
				TableName: table.Name,
				BlockSeq:  i,
				TimeMin:   windowStart,
				TimeMax:   windowEnd - 1,
				SpecID:    specID,
			}
			blocks[i] = &block.BatchBlock{Signature: sig, Batch: batch}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
	return blocks
}

// placeholderRow builds a zero-valued row under s, with `_time_` set to t.
func placeholderRow(s *schema.Schema, t int64) pipeline.Row {
	row := pipeline.NewMapRow()
	for _, col := range s.Fields {
		if col.Name == "_time_" {
			row[wkk.NewColumnKey("_time_")] = t
			continue
		}
		row[col.WireKey()] = zeroValue(col)
	}
	return row
}

func zeroValue(col *schema.Column) any {
	switch col.Kind {
	case schema.KindBool:
		return false
	case schema.KindInt8:
		return int8(0)
	case schema.KindInt16:
		return int16(0)
	case schema.KindInt32:
		return int32(0)
	case schema.KindInt64:
		return int64(0)
	case schema.KindFloat32:
		return float32(0)
	case schema.KindFloat64:
		return float64(0)
	case schema.KindString:
		return ""
	case schema.KindList:
		return pipeline.SliceList{}
	case schema.KindMap:
		return pipeline.MapEntries{}
	default:
		return nil
	}
}
