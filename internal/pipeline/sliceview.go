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

package pipeline

// SliceList is a ListView over a plain Go slice of element values, each of
// which may be nil to represent an element-level null. It is the list
// representation produced by file readers and stored by the FlatBuffer.
type SliceList []any

var _ ListView = SliceList(nil)

func (l SliceList) Len() int { return len(l) }

func (l SliceList) IsNullAt(i int) bool { return l[i] == nil }

func (l SliceList) ReadBoolAt(i int) bool {
	v, _ := l[i].(bool)
	return v
}

func (l SliceList) ReadByteAt(i int) int8 {
	v, _ := l[i].(int8)
	return v
}

func (l SliceList) ReadShortAt(i int) int16 {
	v, _ := l[i].(int16)
	return v
}

func (l SliceList) ReadIntAt(i int) int32 {
	v, _ := l[i].(int32)
	return v
}

func (l SliceList) ReadLongAt(i int) int64 {
	v, _ := l[i].(int64)
	return v
}

func (l SliceList) ReadFloatAt(i int) float32 {
	v, _ := l[i].(float32)
	return v
}

func (l SliceList) ReadDoubleAt(i int) float64 {
	v, _ := l[i].(float64)
	return v
}

func (l SliceList) ReadStringAt(i int) string {
	v, _ := l[i].(string)
	return v
}

// MapEntries is a MapView over a plain Go map of key to value, used for
// map<K,V> columns produced by file readers and stored by the FlatBuffer.
type MapEntries map[string]any

var _ MapView = MapEntries(nil)

func (m MapEntries) Len() int { return len(m) }

func (m MapEntries) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func (m MapEntries) IsNull(key string) bool {
	v, ok := m[key]
	return !ok || v == nil
}

func (m MapEntries) ReadBool(key string) bool {
	v, _ := m[key].(bool)
	return v
}

func (m MapEntries) ReadByte(key string) int8 {
	v, _ := m[key].(int8)
	return v
}

func (m MapEntries) ReadShort(key string) int16 {
	v, _ := m[key].(int16)
	return v
}

func (m MapEntries) ReadInt(key string) int32 {
	v, _ := m[key].(int32)
	return v
}

func (m MapEntries) ReadLong(key string) int64 {
	v, _ := m[key].(int64)
	return v
}

func (m MapEntries) ReadFloat(key string) float32 {
	v, _ := m[key].(float32)
	return v
}

func (m MapEntries) ReadDouble(key string) float64 {
	v, _ := m[key].(float64)
	return v
}

func (m MapEntries) ReadString(key string) string {
	v, _ := m[key].(string)
	return v
}
