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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BucketProfile names a bucket and the access overrides needed to reach it,
// loaded from an operator-maintained YAML file rather than repeated on every
// ingest invocation.
type BucketProfile struct {
	Name          string `yaml:"name"`
	Region        string `yaml:"region"`
	CloudProvider string `yaml:"cloud_provider,omitempty"`
	Endpoint      string `yaml:"endpoint,omitempty"`
	Role          string `yaml:"role,omitempty"`
	PathStyle     bool   `yaml:"path_style,omitempty"`
	InsecureTLS   bool   `yaml:"insecure_tls,omitempty"`
}

// BucketInfo projects a profile into the TableSpec field of the same name.
func (p BucketProfile) BucketInfo() BucketInfo {
	return BucketInfo{Bucket: p.Name, Region: p.Region}
}

// AccessSpec projects a profile into the TableSpec field of the same name.
func (p BucketProfile) AccessSpec() AccessSpec {
	return AccessSpec{
		RoleARN:       p.Role,
		Endpoint:      p.Endpoint,
		PathStyle:     p.PathStyle,
		InsecureTLS:   p.InsecureTLS,
		CloudProvider: p.CloudProvider,
	}
}

type profileFile struct {
	Version int             `yaml:"version"`
	Buckets []BucketProfile `yaml:"buckets"`
}

// LoadBucketProfiles parses a YAML file of named bucket profiles, keyed by
// profile name, so operators can point several TableSpecs at the same
// bucket/region/credential combination without repeating it per spec.
func LoadBucketProfiles(path string) (map[string]BucketProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bucket profile file: %w", err)
	}

	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse bucket profile file: %w", err)
	}

	profiles := make(map[string]BucketProfile, len(f.Buckets))
	for _, b := range f.Buckets {
		if b.Name == "" {
			return nil, fmt.Errorf("bucket profile missing name")
		}
		profiles[b.Name] = b
	}
	return profiles, nil
}
