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

// Package tablespec defines the ingest core's immutable inputs: TableSpec
// (a table's declared shape and ingest policy) and IngestSpec (one work
// unit against a table).
package tablespec

import (
	"fmt"

	"github.com/Gutomata/nebula/internal/schema"
	"github.com/Gutomata/nebula/internal/timespec"
)

// Source identifies where a table's data comes from.
type Source int

const (
	SourceCustom Source = iota
	SourceS3
	SourceLocal
	SourceKafka
	SourceGSheet
)

func (s Source) String() string {
	switch s {
	case SourceCustom:
		return "Custom"
	case SourceS3:
		return "S3"
	case SourceLocal:
		return "Local"
	case SourceKafka:
		return "Kafka"
	case SourceGSheet:
		return "GSheet"
	default:
		return "Unknown"
	}
}

// Filesystem reports whether a Source is read through a local or
// object-store file path, as opposed to a streaming broker or API source.
// The "Swap" and "Roll" loaders are only defined for filesystem sources.
func (s Source) Filesystem() bool {
	switch s {
	case SourceS3, SourceLocal, SourceCustom:
		return true
	default:
		return false
	}
}

// Format is the on-disk encoding of a filesystem source's data file.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// BucketInfo names the object-store bucket (or bucket-equivalent root) a
// TableSpec's S3 source reads from. It is opaque to the ingest core beyond
// what the object-store client needs to resolve a TableSpec's Location
// into a concrete object key.
type BucketInfo struct {
	Bucket string
	Region string
}

// AccessSpec carries the credentials and endpoint overrides an
// object-store client needs to read a TableSpec's bucket. Every field is
// optional; a zero AccessSpec means "use ambient credentials and
// AWS-standard endpoints."
type AccessSpec struct {
	RoleARN       string
	Endpoint      string
	PathStyle     bool
	InsecureTLS   bool
	CloudProvider string // "" or "gcp"
}

// TableSpec is a table's immutable declared shape and ingest policy.
type TableSpec struct {
	Name    string
	MaxMB   int64
	MaxHr   int64
	Schema  *schema.Schema
	Source  Source
	Loader  string
	Location string
	Backup  string
	Format  Format

	TimeSpec     timespec.TimeSpec
	ColumnProps  map[string]string
	AccessSpec   AccessSpec
	BucketInfo   BucketInfo
	Settings     map[string]string
}

// FinalSchema returns the schema rows are stored under once a RowAdapter
// has overlaid `_time_`: for TimeSpec.Type == COLUMN, the source time
// column is removed and `_time_` appended; for every other TimeSpec type,
// `_time_` is simply appended.
func (t *TableSpec) FinalSchema() *schema.Schema {
	s := t.Schema
	if t.TimeSpec.Type == timespec.Column {
		s = s.WithoutColumn(t.TimeSpec.ColName)
	}
	return s.WithColumn(&schema.Column{Name: "_time_", Kind: schema.KindInt64})
}

// State is an IngestSpec's lifecycle stage.
type State int

const (
	StateNew State = iota
	StateProcessing
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateProcessing:
		return "PROCESSING"
	case StateReady:
		return "READY"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// IngestSpec is the ingest core's work unit: one file, against one table.
type IngestSpec struct {
	Table *TableSpec
	Version string
	Path    string
	Domain  string
	Size    uint64
	State   State

	// Mdate is the date value fed to timespec.Derive for a MACRO/"date"
	// TimeSpec. It lives on the work unit, not on Table.TimeSpec, per
	// original_source's mdate_ on IngestSpec rather than on the table.
	Mdate int64
}

// ID returns the IngestSpec's identity: "{table.name}@{path}@{size}",
// stable and content-addressed so retries and re-announcements of the
// same file collapse to the same id.
func (s *IngestSpec) ID() string {
	return fmt.Sprintf("%s@%s@%d", s.Table.Name, s.Path, s.Size)
}
