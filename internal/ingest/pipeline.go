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

// Package ingest is the ingest core's executor and fetch+ingest pipeline:
// work() dispatches an IngestSpec to the synthetic test loader or to the
// filesystem pipeline that reads, times, and batches rows into blocks.
package ingest

import (
	"fmt"
	"io"
	"math"

	"github.com/Gutomata/nebula/internal/block"
	"github.com/Gutomata/nebula/internal/filereader"
	"github.com/Gutomata/nebula/internal/pipeline/wkk"
	"github.com/Gutomata/nebula/internal/rowadapter"
	"github.com/Gutomata/nebula/internal/tablespec"
	"github.com/Gutomata/nebula/internal/timespec"
)

// Run executes the fetch+ingest pipeline of §4.5 against a local file
// already fetched for spec, returning the ordered list of BatchBlocks it
// filled. A source with zero rows yields a nil block list and a nil error.
func Run(table *tablespec.TableSpec, spec *tablespec.IngestSpec, localPath string, blockMaxRows uint64, registry *Registry) ([]*block.BatchBlock, error) {
	switch table.TimeSpec.Type {
	case timespec.Static, timespec.Current, timespec.Column, timespec.Macro:
	default:
		return nil, fmt.Errorf("ingest: unsupported time spec type %d", table.TimeSpec.Type)
	}

	finalSchema := table.FinalSchema()
	registry.Enroll(&Table{Name: table.Name, Schema: finalSchema, ColumnProps: table.ColumnProps})

	reader, err := openReader(table, localPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	capacity := int(blockMaxRows)
	if capacity <= 0 {
		capacity = 1
	}

	adapter := rowadapter.New(timespec.Derive(table.TimeSpec, spec.Mdate))
	specID := spec.ID()

	var blocks []*block.BatchBlock
	blockSeq := 0
	batch := block.NewBatch(finalSchema, capacity)
	timeMin, timeMax := int64(math.MaxInt64), int64(math.MinInt64)

	for {
		row, err := reader.GetRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: read row: %w", err)
		}

		if batch.Rows() >= capacity {
			blocks = append(blocks, finalize(table.Name, specID, blockSeq, timeMin, timeMax, batch))
			blockSeq++
			timeMin, timeMax = math.MaxInt64, math.MinInt64
			batch = block.NewBatch(finalSchema, capacity)
		}

		adapter.Set(row)
		t := adapter.ReadLong(wkk.TimeColumn)
		if t < timeMin {
			timeMin = t
		}
		if t > timeMax {
			timeMax = t
		}
		if err := batch.Add(adapter); err != nil {
			return nil, fmt.Errorf("ingest: append row: %w", err)
		}
	}

	if batch.Rows() > 0 {
		blocks = append(blocks, finalize(table.Name, specID, blockSeq, timeMin, timeMax, batch))
	}
	return blocks, nil
}

func finalize(tableName, specID string, seq int, timeMin, timeMax int64, batch *block.Batch) *block.BatchBlock {
	return &block.BatchBlock{
		Signature: block.Signature{
			TableName: tableName,
			BlockSeq:  seq,
			TimeMin:   timeMin,
			TimeMax:   timeMax,
			SpecID:    specID,
		},
		Batch: batch,
	}
}

// openReader selects a Reader by table.Format. CSV opens with a tab
// delimiter over the pre-`_time_` schema; Parquet opens with the same
// pre-`_time_` schema. Both readers are schema-driven, not inferring, so
// table.Schema (not FinalSchema) is what they're constructed against.
func openReader(table *tablespec.TableSpec, localPath string) (filereader.Reader, error) {
	switch table.Format {
	case tablespec.FormatCSV:
		return filereader.NewCSVReader(localPath, '\t', table.Schema)
	case tablespec.FormatParquet:
		return filereader.NewParquetReader(localPath, table.Schema)
	default:
		return nil, fmt.Errorf("ingest: unsupported format %q", table.Format)
	}
}
