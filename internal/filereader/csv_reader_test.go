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

package filereader

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Gutomata/nebula/internal/schema"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.tsv")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func eventSchema() *schema.Schema {
	return &schema.Schema{Fields: []*schema.Column{
		{Name: "id", Kind: schema.KindInt32},
		{Name: "event", Kind: schema.KindString},
	}}
}

func TestCSVReaderReadsAllRows(t *testing.T) {
	path := writeTempFile(t, "1\ta\n2\tb\n3\tc\n4\td\n")
	r, err := NewCSVReader(path, '\t', eventSchema())
	if err != nil {
		t.Fatalf("new reader: %v", err)
	}
	defer r.Close()

	var ids []int32
	for {
		row, err := r.GetRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("get row: %v", err)
		}
		ids = append(ids, row.ReadInt("id"))
	}
	if len(ids) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(ids))
	}
	if ids[0] != 1 || ids[3] != 4 {
		t.Fatalf("rows out of order: %v", ids)
	}
}

func TestCSVReaderEmptyFileYieldsNoRows(t *testing.T) {
	path := writeTempFile(t, "")
	r, err := NewCSVReader(path, '\t', eventSchema())
	if err != nil {
		t.Fatalf("new reader: %v", err)
	}
	defer r.Close()

	_, err = r.GetRow()
	if err != io.EOF {
		t.Fatalf("expected io.EOF for empty file, got %v", err)
	}
}

func TestNewCSVReaderRejectsListColumns(t *testing.T) {
	s := &schema.Schema{Fields: []*schema.Column{{Name: "tags", Kind: schema.KindList, Elem: &schema.Column{Kind: schema.KindString}}}}
	path := writeTempFile(t, "a\n")
	if _, err := NewCSVReader(path, '\t', s); err == nil {
		t.Fatalf("expected error constructing CSV reader over a list column")
	}
}
