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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalClient is the Client implementation for tables whose Source is
// SourceLocal: prefixes and keys are paths relative to a root directory
// on the local filesystem.
type LocalClient struct {
	root string
}

var _ Client = (*LocalClient)(nil)

// NewLocalClient returns a Client rooted at root.
func NewLocalClient(root string) *LocalClient {
	return &LocalClient{root: root}
}

func (c *LocalClient) path(key string) string {
	return filepath.Join(c.root, filepath.FromSlash(key))
}

func (c *LocalClient) List(ctx context.Context, prefix string) ([]FileInfo, error) {
	dir := c.path(prefix)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	out := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		out = append(out, FileInfo{
			IsDir: e.IsDir(),
			Mtime: info.ModTime(),
			Size:  info.Size(),
			Name:  filepath.ToSlash(filepath.Join(prefix, e.Name())),
		})
	}
	return out, nil
}

func (c *LocalClient) Copy(ctx context.Context, remoteKey string) (string, error) {
	src := c.path(remoteKey)
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.CreateTemp("", uuid.NewString()+"-"+filepath.Base(remoteKey))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		_ = os.Remove(out.Name())
		return "", fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Name(), nil
}

func (c *LocalClient) Read(ctx context.Context, key string, buf []byte, size int) (int, error) {
	f, err := os.Open(c.path(key))
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", key, err)
	}
	defer func() { _ = f.Close() }()

	if size > len(buf) {
		size = len(buf)
	}
	n, err := io.ReadFull(f, buf[:size])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return n, fmt.Errorf("read %s: %w", key, err)
	}
	return n, nil
}

func (c *LocalClient) Sync(ctx context.Context, from, to string, recursive bool) (bool, error) {
	src := c.path(from)
	dst := c.path(to)

	entries, err := os.ReadDir(src)
	if err != nil {
		return false, fmt.Errorf("sync list %s: %w", src, err)
	}
	copied := false
	for _, e := range entries {
		srcPath := filepath.Join(src, e.Name())
		dstPath := filepath.Join(dst, e.Name())
		if e.IsDir() {
			if !recursive {
				continue
			}
			if ok, err := c.Sync(ctx, filepath.ToSlash(filepath.Join(from, e.Name())), filepath.ToSlash(filepath.Join(to, e.Name())), recursive); err != nil {
				return copied, err
			} else if ok {
				copied = true
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return copied, fmt.Errorf("sync copy %s -> %s: %w", srcPath, dstPath, err)
		}
		copied = true
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	_, err = io.Copy(out, in)
	return err
}
