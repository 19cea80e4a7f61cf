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

package wkk

import "testing"

func TestNewColumnKeyEquality(t *testing.T) {
	a := NewColumnKey("event")
	b := NewColumnKey("event")
	if a != b {
		t.Fatalf("expected interned handles for the same name to be equal")
	}
	if ColumnKeyValue(a) != "event" {
		t.Fatalf("unexpected value: %s", ColumnKeyValue(a))
	}
}
