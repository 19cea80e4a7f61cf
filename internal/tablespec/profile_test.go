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

package tablespec

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleProfileYAML = `
version: 1
buckets:
  - name: raw-events
    region: us-east-1
    cloud_provider: gcp
    endpoint: https://storage.googleapis.com
    role: arn:aws:iam::123456789012:role/ingest
    path_style: true
  - name: backups
    region: us-west-2
`

func writeProfileFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write profile file: %v", err)
	}
	return path
}

func TestLoadBucketProfilesParsesNamedEntries(t *testing.T) {
	path := writeProfileFile(t, sampleProfileYAML)

	profiles, err := LoadBucketProfiles(path)
	if err != nil {
		t.Fatalf("load bucket profiles: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}

	raw, ok := profiles["raw-events"]
	if !ok {
		t.Fatalf("expected a raw-events profile")
	}
	if got := raw.BucketInfo(); got != (BucketInfo{Bucket: "raw-events", Region: "us-east-1"}) {
		t.Fatalf("unexpected bucket info: %+v", got)
	}
	wantAccess := AccessSpec{
		RoleARN:       "arn:aws:iam::123456789012:role/ingest",
		Endpoint:      "https://storage.googleapis.com",
		PathStyle:     true,
		CloudProvider: "gcp",
	}
	if got := raw.AccessSpec(); got != wantAccess {
		t.Fatalf("unexpected access spec: %+v, want %+v", got, wantAccess)
	}

	backups, ok := profiles["backups"]
	if !ok {
		t.Fatalf("expected a backups profile")
	}
	if got := backups.BucketInfo(); got != (BucketInfo{Bucket: "backups", Region: "us-west-2"}) {
		t.Fatalf("unexpected bucket info: %+v", got)
	}
}

func TestLoadBucketProfilesRejectsUnnamedEntry(t *testing.T) {
	path := writeProfileFile(t, "version: 1\nbuckets:\n  - region: us-east-1\n")

	if _, err := LoadBucketProfiles(path); err == nil {
		t.Fatalf("expected an error for an unnamed bucket profile")
	}
}

func TestLoadBucketProfilesMissingFile(t *testing.T) {
	if _, err := LoadBucketProfiles(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing profile file")
	}
}
