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

// Package filereader implements the file-format layer the ingest pipeline
// pulls rows from: a finite, non-restartable sequence of pipeline.Row
// values read from a CSV or Parquet file on local disk.
package filereader

import (
	"github.com/Gutomata/nebula/internal/pipeline"
)

// Reader produces rows one at a time from a single source file.
type Reader interface {
	// GetRow returns the next row. It returns io.EOF once the source is
	// exhausted; no further calls are valid after that.
	GetRow() (pipeline.Row, error)

	// Close releases the reader's underlying file handle. Safe to call
	// more than once.
	Close() error
}
