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
	"errors"
	"fmt"
)

// ErrRowConversion is a sentinel error indicating a row's raw value could
// not be converted to its declared schema column type. Use errors.Is to
// check for this error and errors.As to recover the column and cause.
var ErrRowConversion = errors.New("row conversion failed")

// RowConversionError reports which column in a row failed to convert and
// why. It is a data error, not a systemic one: the caller decides whether
// to abort the spec or skip the row.
type RowConversionError struct {
	Column string
	Raw    any
	Err    error
}

func (e *RowConversionError) Error() string {
	return fmt.Sprintf("%s: column %q: value %v: %v", ErrRowConversion, e.Column, e.Raw, e.Err)
}

func (e *RowConversionError) Unwrap() error { return e.Err }

func (e *RowConversionError) Is(target error) bool { return target == ErrRowConversion }
