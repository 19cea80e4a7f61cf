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

package block

// Signature is the unique identity of an installed block: the tuple
// (TableName, BlockSeq, TimeMin, TimeMax, SpecID). Two blocks sharing
// (TableName, SpecID) are said to share a spec — the unit of Swap
// replacement.
type Signature struct {
	TableName string
	BlockSeq  int
	TimeMin   int64
	TimeMax   int64
	SpecID    string
}

// SameSpec reports whether s and other share (TableName, SpecID).
func (s Signature) SameSpec(other Signature) bool {
	return s.TableName == other.TableName && s.SpecID == other.SpecID
}

// BatchBlock pairs a Signature with the Batch holding its rows. Once
// installed in a BlockManager, a BatchBlock is immutable until explicitly
// replaced by a same-spec Swap install.
type BatchBlock struct {
	Signature Signature
	Batch     *Batch
}
