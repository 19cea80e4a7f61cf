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
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/Gutomata/nebula/internal/awsclient"
)

// S3Client is the Client implementation for S3-compatible object stores
// (AWS S3, GCS via the S3-compat API, MinIO). It wraps an
// *awsclient.S3Client configured for a table's bucket and access policy.
type S3Client struct {
	aws    *awsclient.S3Client
	bucket string
}

var _ Client = (*S3Client)(nil)

// NewS3Client returns a Client backed by the given bucket, addressed
// through aws.
func NewS3Client(aws *awsclient.S3Client, bucket string) *S3Client {
	return &S3Client{aws: aws, bucket: bucket}
}

func (c *S3Client) List(ctx context.Context, prefix string) ([]FileInfo, error) {
	ctx, span := c.aws.Tracer.Start(ctx, "cloudstore.S3Client.List",
		trace.WithAttributes(attribute.String("prefix", prefix)))
	defer span.End()

	var out []FileInfo
	p := s3.NewListObjectsV2Paginator(c.aws.Client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(c.bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list %s/%s: %w", c.bucket, prefix, err)
		}
		for _, cp := range page.CommonPrefixes {
			out = append(out, FileInfo{IsDir: true, Name: aws.ToString(cp.Prefix)})
		}
		for _, obj := range page.Contents {
			fi := FileInfo{Name: aws.ToString(obj.Key), Size: aws.ToInt64(obj.Size)}
			if obj.LastModified != nil {
				fi.Mtime = *obj.LastModified
			}
			out = append(out, fi)
		}
	}
	return out, nil
}

func (c *S3Client) Copy(ctx context.Context, remoteKey string) (string, error) {
	ctx, span := c.aws.Tracer.Start(ctx, "cloudstore.S3Client.Copy",
		trace.WithAttributes(attribute.String("key", remoteKey)))
	defer span.End()

	f, err := os.CreateTemp("", uuid.NewString()+"-"+filepath.Base(remoteKey))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	downloader := manager.NewDownloader(c.aws.Client)
	size, err := downloader.Download(ctx, f, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(remoteKey),
	})
	if err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		copyErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("bucket", c.bucket)))
		return "", fmt.Errorf("copy %s/%s: %w", c.bucket, remoteKey, err)
	}
	_ = f.Close()

	copyCount.Add(ctx, 1, metric.WithAttributes(attribute.String("bucket", c.bucket)))
	copyBytes.Add(ctx, size, metric.WithAttributes(attribute.String("bucket", c.bucket)))
	return f.Name(), nil
}

func (c *S3Client) Read(ctx context.Context, key string, buf []byte, size int) (int, error) {
	ctx, span := c.aws.Tracer.Start(ctx, "cloudstore.S3Client.Read",
		trace.WithAttributes(attribute.String("key", key)))
	defer span.End()

	if size > len(buf) {
		size = len(buf)
	}
	out, err := c.aws.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Range:  aws.String(fmt.Sprintf("bytes=0-%d", size-1)),
	})
	if err != nil {
		return 0, fmt.Errorf("read %s/%s: %w", c.bucket, key, err)
	}
	defer func() { _ = out.Body.Close() }()

	n := 0
	for n < size {
		m, rerr := out.Body.Read(buf[n:size])
		n += m
		if rerr != nil {
			break
		}
	}
	return n, nil
}

func (c *S3Client) Sync(ctx context.Context, from, to string, recursive bool) (bool, error) {
	ctx, span := c.aws.Tracer.Start(ctx, "cloudstore.S3Client.Sync",
		trace.WithAttributes(attribute.String("from", from), attribute.String("to", to), attribute.Bool("recursive", recursive)))
	defer span.End()

	keys, err := c.listKeys(ctx, from, recursive)
	if err != nil {
		return false, err
	}
	if len(keys) == 0 {
		return false, nil
	}

	for _, key := range keys {
		dstKey := to + strings.TrimPrefix(key, from)
		_, err := c.aws.Client.CopyObject(ctx, &s3.CopyObjectInput{
			Bucket:     aws.String(c.bucket),
			CopySource: aws.String(c.bucket + "/" + key),
			Key:        aws.String(dstKey),
		})
		if err != nil {
			return false, fmt.Errorf("sync copy %s -> %s: %w", key, dstKey, err)
		}
		syncCount.Add(ctx, 1, metric.WithAttributes(attribute.String("bucket", c.bucket)))
	}
	return true, nil
}

func (c *S3Client) listKeys(ctx context.Context, prefix string, recursive bool) ([]string, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(prefix),
	}
	if !recursive {
		input.Delimiter = aws.String("/")
	}
	var keys []string
	p := s3.NewListObjectsV2Paginator(c.aws.Client, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list %s/%s: %w", c.bucket, prefix, err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}
