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
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
)

type ingestParquetRow struct {
	ID int32  `parquet:"id"`
	Ts string `parquet:"ts"`
}

func writeParquetFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.parquet")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create parquet file: %v", err)
	}
	defer f.Close()

	rows := []ingestParquetRow{
		{ID: 1, Ts: "2020-01-01 00:00:00"},
		{ID: 2, Ts: "2020-01-01 00:00:10"},
	}
	if err := parquet.Write(f, rows); err != nil {
		t.Fatalf("write parquet rows: %v", err)
	}
	return path
}
