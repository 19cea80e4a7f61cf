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
	"context"
	"os"
)

// Fetch obtains a readable local file for path against client, downloading
// it to a freshly created, uniquely named temp file via client.Copy; the
// returned cleanup removes that temp file (best-effort, the caller should
// still call it even on error paths where a path was returned). This
// applies uniformly across every filesystem source, including SourceLocal:
// client there is a LocalClient rooted at the table's declared Location, so
// path is resolved relative to Location exactly like an S3 key is resolved
// relative to a bucket, rather than being treated as an absolute path that
// bypasses Location.
func Fetch(ctx context.Context, client Client, path string) (localPath string, cleanup func(), err error) {
	noop := func() {}

	tmp, err := client.Copy(ctx, path)
	if err != nil {
		return "", noop, err
	}
	cleanup = func() { _ = os.Remove(tmp) }
	return tmp, cleanup, nil
}
