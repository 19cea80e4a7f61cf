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

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Gutomata/nebula/config"
	"github.com/Gutomata/nebula/internal/awsclient"
	"github.com/Gutomata/nebula/internal/block"
	"github.com/Gutomata/nebula/internal/helpers"
	"github.com/Gutomata/nebula/internal/ingest"
	"github.com/Gutomata/nebula/internal/logctx"
	"github.com/Gutomata/nebula/internal/schema"
	"github.com/Gutomata/nebula/internal/tablespec"
	"github.com/Gutomata/nebula/internal/timespec"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Run a single IngestSpec's work() against a table",
		RunE:  runIngest,
	}

	flags := cmd.Flags()
	flags.String("table", "", "table name")
	flags.String("schema", "", "serialized table schema (schema.Marshal format)")
	flags.String("format", "csv", `source file format: "csv" or "parquet"`)
	flags.String("source", "Local", "source kind: Custom, S3, Local, Kafka, GSheet")
	flags.String("loader", "Roll", `loader: "Swap", "Roll", or the configured test-loader name`)
	flags.String("path", "", "source file path (relative to location for object-store/local sources)")
	flags.String("location", "", "local root directory or S3 key prefix root")
	flags.String("bucket", "", "S3 bucket name (source=S3 only)")
	flags.String("region", "", "S3 region (source=S3 only)")
	flags.String("bucket-profile-file", "", "YAML file of named bucket profiles (overrides --bucket/--region)")
	flags.String("bucket-profile", "", "named profile within --bucket-profile-file")
	flags.Int64("max-hr", 1, "table.max_hr, used by the synthetic test loader")
	flags.String("time-type", "static", "time spec type: static, current, column, macro")
	flags.Int64("time-value", 0, "unix_time_value for static time, or mdate for macro date")
	flags.String("time-col", "", "source column name for column time")
	flags.String("time-pattern", "", "strftime pattern for column time")

	for _, name := range []string{"table", "schema", "path"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Errorf("failed to mark %s flag as required: %w", name, err))
		}
	}

	rootCmd.AddCommand(cmd)
}

func runIngest(c *cobra.Command, _ []string) error {
	helpers.CleanTempDir()

	flags := c.Flags()
	tableName, _ := flags.GetString("table")
	serializedSchema, _ := flags.GetString("schema")
	format, _ := flags.GetString("format")
	sourceName, _ := flags.GetString("source")
	loader, _ := flags.GetString("loader")
	path, _ := flags.GetString("path")
	location, _ := flags.GetString("location")
	bucket, _ := flags.GetString("bucket")
	region, _ := flags.GetString("region")
	bucketProfileFile, _ := flags.GetString("bucket-profile-file")
	bucketProfileName, _ := flags.GetString("bucket-profile")
	maxHr, _ := flags.GetInt64("max-hr")
	timeType, _ := flags.GetString("time-type")
	timeValue, _ := flags.GetInt64("time-value")
	timeCol, _ := flags.GetString("time-col")
	timePattern, _ := flags.GetString("time-pattern")

	s, err := schema.Parse(serializedSchema)
	if err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	source, err := parseSource(sourceName)
	if err != nil {
		return err
	}

	ts, err := parseTimeSpec(timeType, timeValue, timeCol, timePattern)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	bucketInfo := tablespec.BucketInfo{Bucket: bucket, Region: region}
	var accessSpec tablespec.AccessSpec
	if bucketProfileFile != "" {
		profiles, err := tablespec.LoadBucketProfiles(bucketProfileFile)
		if err != nil {
			return fmt.Errorf("load bucket profiles: %w", err)
		}
		profile, ok := profiles[bucketProfileName]
		if !ok {
			return fmt.Errorf("unknown bucket profile %q in %s", bucketProfileName, bucketProfileFile)
		}
		bucketInfo = profile.BucketInfo()
		accessSpec = profile.AccessSpec()
	}

	table := &tablespec.TableSpec{
		Name:       tableName,
		MaxHr:      maxHr,
		Schema:     s,
		Source:     source,
		Loader:     loader,
		Location:   location,
		Format:     tablespec.Format(format),
		TimeSpec:   ts,
		BucketInfo: bucketInfo,
		AccessSpec: accessSpec,
	}

	info, statErr := os.Stat(path)
	var size uint64
	if statErr == nil {
		size = uint64(info.Size())
	}
	spec := &tablespec.IngestSpec{Table: table, Path: path, Size: size, Mdate: timeValue}

	ctx := logctx.WithLogger(context.Background(), slog.Default())

	var aws *awsclient.Manager
	if source == tablespec.SourceS3 || source == tablespec.SourceCustom {
		aws, err = awsclient.NewManager(ctx)
		if err != nil {
			return fmt.Errorf("create AWS manager: %w", err)
		}
	}

	blocks := block.NewManager()
	registry := ingest.NewRegistry()
	exec := ingest.NewExecutor(blocks, registry, aws, cfg.TestLoaderName, cfg.BlockMaxRows)

	if !exec.Work(ctx, spec) {
		return fmt.Errorf("work() failed for spec %s", spec.ID())
	}

	for _, b := range blocks.Enumerate(tableName) {
		fmt.Printf("block seq=%d rows=%d time=[%d,%d] spec=%s\n",
			b.Signature.BlockSeq, b.Batch.Rows(), b.Signature.TimeMin, b.Signature.TimeMax, b.Signature.SpecID)
	}
	return nil
}

func parseSource(name string) (tablespec.Source, error) {
	switch name {
	case "Custom":
		return tablespec.SourceCustom, nil
	case "S3":
		return tablespec.SourceS3, nil
	case "Local":
		return tablespec.SourceLocal, nil
	case "Kafka":
		return tablespec.SourceKafka, nil
	case "GSheet":
		return tablespec.SourceGSheet, nil
	default:
		return 0, fmt.Errorf("unknown source %q", name)
	}
}

func parseTimeSpec(timeType string, timeValue int64, col, pattern string) (timespec.TimeSpec, error) {
	switch timeType {
	case "static":
		return timespec.TimeSpec{Type: timespec.Static, UnixTimeValue: timeValue}, nil
	case "current":
		return timespec.TimeSpec{Type: timespec.Current}, nil
	case "column":
		return timespec.TimeSpec{Type: timespec.Column, ColName: col, Pattern: pattern}, nil
	case "macro":
		return timespec.TimeSpec{Type: timespec.Macro, Pattern: pattern}, nil
	default:
		return timespec.TimeSpec{}, fmt.Errorf("unknown time-type %q", timeType)
	}
}
