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

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "NebulaTest", cfg.TestLoaderName)
	require.Equal(t, uint64(50000), cfg.BlockMaxRows)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("NEBULA_TEST_LOADER_NAME", "CustomLoader")
	t.Setenv("NEBULA_BLOCK_MAX_ROWS", "100")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "CustomLoader", cfg.TestLoaderName)
	require.Equal(t, uint64(100), cfg.BlockMaxRows)
}
