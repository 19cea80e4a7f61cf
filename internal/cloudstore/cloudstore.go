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

// Package cloudstore is the ingest core's object-store collaborator: the
// thin interface the pipeline fetches table data through, plus concrete
// S3 and local-filesystem implementations.
package cloudstore

import (
	"context"
	"time"
)

// FileInfo describes one entry returned by a Client's List.
type FileInfo struct {
	IsDir  bool
	Mtime  time.Time
	Size   int64
	Name   string
	Domain string
}

// Client is the object-store collaborator the ingest pipeline fetches
// table source files through. Every method is safe for concurrent use.
type Client interface {
	// List enumerates the entries directly under prefix.
	List(ctx context.Context, prefix string) ([]FileInfo, error)

	// Copy downloads remoteKey to a local temp file and returns its path.
	// The caller owns the returned file and is responsible for removing it.
	Copy(ctx context.Context, remoteKey string) (localTmpPath string, err error)

	// Read fills buf with up to size bytes read from key, starting at
	// offset 0, and reports how many bytes were actually read.
	Read(ctx context.Context, key string, buf []byte, size int) (bytesRead int, err error)

	// Sync copies everything under from to to, recursing into
	// subdirectories/prefixes when recursive is true. It reports whether
	// anything was copied.
	Sync(ctx context.Context, from, to string, recursive bool) (bool, error)
}
