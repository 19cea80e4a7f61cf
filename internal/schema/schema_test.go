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

package schema

import "testing"

func TestParseRoundTrip(t *testing.T) {
	const wire = `{"fields":[
		{"name":"id","type":"i64"},
		{"name":"name","type":"string"},
		{"name":"tags","type":"list","elem":{"name":"","type":"string"}},
		{"name":"attrs","type":"map","key":{"name":"","type":"string"},"value":{"name":"","type":"f64"}}
	]}`

	s, err := Parse(wire)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := s.Names(), []string{"id", "name", "tags", "attrs"}; !equalNames(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}

	tags, ok := s.Column("tags")
	if !ok || tags.Kind != KindList || tags.Elem.Kind != KindString {
		t.Fatalf("tags column malformed: %+v", tags)
	}
	attrs, ok := s.Column("attrs")
	if !ok || attrs.Kind != KindMap || attrs.Key.Kind != KindString || attrs.Value.Kind != KindFloat64 {
		t.Fatalf("attrs column malformed: %+v", attrs)
	}

	out, err := Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	reparsed, err := Parse(out)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !equalNames(reparsed.Names(), s.Names()) {
		t.Fatalf("round trip changed column names: %v", reparsed.Names())
	}
}

func TestParseRejectsDuplicateNames(t *testing.T) {
	const wire = `{"fields":[{"name":"id","type":"i64"},{"name":"id","type":"string"}]}`
	if _, err := Parse(wire); err == nil {
		t.Fatalf("expected error for duplicate column name")
	}
}

func TestWithColumnAndWithoutColumn(t *testing.T) {
	s := &Schema{Fields: []*Column{{Name: "id", Kind: KindInt64}}}
	withTime := s.WithColumn(&Column{Name: "_time_", Kind: KindInt64})
	if len(s.Fields) != 1 {
		t.Fatalf("WithColumn mutated receiver")
	}
	if len(withTime.Fields) != 2 {
		t.Fatalf("expected 2 fields after WithColumn, got %d", len(withTime.Fields))
	}

	removed := withTime.WithoutColumn("id")
	if len(withTime.Fields) != 2 {
		t.Fatalf("WithoutColumn mutated receiver")
	}
	if _, ok := removed.Column("id"); ok {
		t.Fatalf("expected id to be removed")
	}
	if _, ok := removed.Column("_time_"); !ok {
		t.Fatalf("expected _time_ to survive removal")
	}
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
