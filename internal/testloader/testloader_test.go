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

package testloader

import (
	"testing"

	"github.com/Gutomata/nebula/internal/schema"
	"github.com/Gutomata/nebula/internal/tablespec"
	"github.com/Gutomata/nebula/internal/timespec"
)

func TestGenerateProducesContiguousWindows(t *testing.T) {
	old := Parallelism
	Parallelism = func() int { return 4 }
	defer func() { Parallelism = old }()

	table := &tablespec.TableSpec{
		Name:     "events",
		MaxHr:    24,
		Schema:   &schema.Schema{Fields: []*schema.Column{{Name: "id", Kind: schema.KindInt32}}},
		TimeSpec: timespec.TimeSpec{Type: timespec.Static, UnixTimeValue: 0},
	}

	blocks := Generate(table, "events@test@0")
	if len(blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(blocks))
	}

	wantWindows := [][2]int64{{0, 21600}, {21600, 43200}, {43200, 64800}, {64800, 86400}}
	for i, b := range blocks {
		if b.Signature.BlockSeq != i {
			t.Fatalf("block %d: expected seq %d, got %d", i, i, b.Signature.BlockSeq)
		}
		if b.Signature.TimeMin != wantWindows[i][0] {
			t.Fatalf("block %d: expected time_min %d, got %d", i, wantWindows[i][0], b.Signature.TimeMin)
		}
		if b.Signature.TimeMax != wantWindows[i][1]-1 {
			t.Fatalf("block %d: expected time_max %d, got %d", i, wantWindows[i][1]-1, b.Signature.TimeMax)
		}
		if b.Signature.SpecID != "events@test@0" {
			t.Fatalf("block %d: expected spec id to match, got %q", i, b.Signature.SpecID)
		}
		if b.Batch.Rows() != 1 {
			t.Fatalf("block %d: expected 1 placeholder row, got %d", i, b.Batch.Rows())
		}
	}
}

func TestGenerateDefaultsToOneWindowWhenParallelismIsZero(t *testing.T) {
	old := Parallelism
	Parallelism = func() int { return 0 }
	defer func() { Parallelism = old }()

	table := &tablespec.TableSpec{
		Name:     "events",
		MaxHr:    1,
		Schema:   &schema.Schema{Fields: []*schema.Column{{Name: "id", Kind: schema.KindInt32}}},
		TimeSpec: timespec.TimeSpec{Type: timespec.Static, UnixTimeValue: 0},
	}

	blocks := Generate(table, "events@test@0")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Signature.TimeMin != 0 || blocks[0].Signature.TimeMax != 3599 {
		t.Fatalf("unexpected window: %+v", blocks[0].Signature)
	}
}
