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

package cloudstore

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	copyErrors metric.Int64Counter
	copyCount  metric.Int64Counter
	copyBytes  metric.Int64Counter
	syncCount  metric.Int64Counter
)

func init() {
	meter := otel.Meter("github.com/Gutomata/nebula/internal/cloudstore")

	var err error
	copyErrors, err = meter.Int64Counter(
		"nebula.cloudstore.copy.errors",
		metric.WithDescription("Number of object-store copy errors"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create copy.errors counter: %w", err))
	}

	copyCount, err = meter.Int64Counter(
		"nebula.cloudstore.copy.count",
		metric.WithDescription("Number of object-store copies"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create copy.count counter: %w", err))
	}

	copyBytes, err = meter.Int64Counter(
		"nebula.cloudstore.copy.bytes",
		metric.WithDescription("Bytes copied from the object store"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create copy.bytes counter: %w", err))
	}

	syncCount, err = meter.Int64Counter(
		"nebula.cloudstore.sync.count",
		metric.WithDescription("Number of objects copied by Sync"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create sync.count counter: %w", err))
	}
}
