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

package tablespec

import (
	"testing"

	"github.com/Gutomata/nebula/internal/schema"
	"github.com/Gutomata/nebula/internal/timespec"
)

func TestIDIsStableAndContentAddressed(t *testing.T) {
	table := &TableSpec{Name: "events"}
	a := &IngestSpec{Table: table, Path: "2020/01/01/file.csv", Size: 100}
	b := &IngestSpec{Table: table, Path: "2020/01/01/file.csv", Size: 100}
	if a.ID() != b.ID() {
		t.Fatalf("expected equal ids for identical (table,path,size), got %q vs %q", a.ID(), b.ID())
	}

	c := &IngestSpec{Table: table, Path: "2020/01/01/file.csv", Size: 200}
	if a.ID() == c.ID() {
		t.Fatalf("expected different ids for different size, got %q", a.ID())
	}
}

func TestFinalSchemaColumnTimeRemovesSourceColumn(t *testing.T) {
	table := &TableSpec{
		Name:   "events",
		Schema: &schema.Schema{Fields: []*schema.Column{{Name: "id", Kind: schema.KindInt32}, {Name: "ts", Kind: schema.KindString}}},
		TimeSpec: timespec.TimeSpec{Type: timespec.Column, ColName: "ts", Pattern: "%Y-%m-%d %H:%M:%S"},
	}
	final := table.FinalSchema()
	if _, ok := final.Column("ts"); ok {
		t.Fatalf("expected source time column ts to be removed from final schema")
	}
	if _, ok := final.Column("_time_"); !ok {
		t.Fatalf("expected _time_ column in final schema")
	}
	if len(final.Fields) != 2 {
		t.Fatalf("expected 2 final fields (id, _time_), got %d", len(final.Fields))
	}
}

func TestFinalSchemaStaticKeepsSourceColumns(t *testing.T) {
	table := &TableSpec{
		Name:     "events",
		Schema:   &schema.Schema{Fields: []*schema.Column{{Name: "id", Kind: schema.KindInt32}}},
		TimeSpec: timespec.TimeSpec{Type: timespec.Static, UnixTimeValue: 1000},
	}
	final := table.FinalSchema()
	if len(final.Fields) != 2 {
		t.Fatalf("expected 2 final fields (id, _time_), got %d", len(final.Fields))
	}
	if _, ok := final.Column("id"); !ok {
		t.Fatalf("expected id column to survive")
	}
}

func TestSourceFilesystem(t *testing.T) {
	if !SourceS3.Filesystem() {
		t.Fatalf("expected S3 to be a filesystem source")
	}
	if SourceKafka.Filesystem() {
		t.Fatalf("expected Kafka to not be a filesystem source")
	}
}
