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

package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "zero duration", duration: 0, want: "0s"},
		{name: "30 seconds", duration: 30 * time.Second, want: "30s"},
		{name: "59 seconds", duration: 59 * time.Second, want: "59s"},
		{name: "exactly 1 minute", duration: time.Minute, want: "1m"},
		{name: "1 minute 30 seconds", duration: time.Minute + 30*time.Second, want: "1m30s"},
		{name: "2 minutes", duration: 2 * time.Minute, want: "2m"},
		{name: "exactly 1 hour", duration: time.Hour, want: "1h"},
		{name: "1 hour 30 minutes", duration: time.Hour + 30*time.Minute, want: "1h30m"},
		{name: "1 hour 1 minute", duration: time.Hour + time.Minute, want: "1h1m"},
		{name: "24 hours", duration: 24 * time.Hour, want: "24h"},
		{name: "25 hours 30 minutes", duration: 25*time.Hour + 30*time.Minute, want: "25h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDuration(tt.duration)
			assert.Equal(t, tt.want, got, "FormatDuration(%v)", tt.duration)
		})
	}
}
