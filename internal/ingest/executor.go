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

package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Gutomata/nebula/internal/awsclient"
	"github.com/Gutomata/nebula/internal/block"
	"github.com/Gutomata/nebula/internal/cloudstore"
	"github.com/Gutomata/nebula/internal/helpers"
	"github.com/Gutomata/nebula/internal/logctx"
	"github.com/Gutomata/nebula/internal/tablespec"
	"github.com/Gutomata/nebula/internal/testloader"
)

// Executor is the IngestSpec executor of §4.1: it dispatches a spec's
// table.loader to one of the test loader, Swap, or Roll and drives the
// BlockManager accordingly. Work never panics on ordinary failure; every
// failure path returns false with the BlockManager left unmodified.
type Executor struct {
	Blocks         *block.Manager
	Registry       *Registry
	AWS            *awsclient.Manager
	TestLoaderName string
	BlockMaxRows   uint64
}

// NewExecutor returns an Executor wired to the given collaborators.
func NewExecutor(blocks *block.Manager, registry *Registry, aws *awsclient.Manager, testLoaderName string, blockMaxRows uint64) *Executor {
	return &Executor{
		Blocks:         blocks,
		Registry:       registry,
		AWS:            aws,
		TestLoaderName: testLoaderName,
		BlockMaxRows:   blockMaxRows,
	}
}

// Work executes spec to completion, returning whether it succeeded. It is
// a pure state transition on e.Blocks: either every new block from this
// run is installed and Work returns true, or e.Blocks is left exactly as
// it was found and Work returns false.
func (e *Executor) Work(ctx context.Context, spec *tablespec.IngestSpec) bool {
	log := logctx.FromContext(ctx)
	table := spec.Table
	started := time.Now()

	var ok bool
	switch table.Loader {
	case e.TestLoaderName:
		blocks := testloader.Generate(table, spec.ID())
		e.Blocks.Add(blocks)
		ok = true
	case "Swap":
		ok = e.runFilesystem(ctx, spec, true, log)
	case "Roll":
		ok = e.runFilesystem(ctx, spec, false, log)
	default:
		log.Warn("unrecognized loader", "loader", table.Loader, "table", table.Name)
		ok = false
	}

	log.Info("work() finished", "table", table.Name, "spec_id", spec.ID(), "ok", ok,
		"elapsed", helpers.FormatDuration(time.Since(started)))
	return ok
}

func (e *Executor) runFilesystem(ctx context.Context, spec *tablespec.IngestSpec, swap bool, log *slog.Logger) bool {
	table := spec.Table
	if !table.Source.Filesystem() {
		log.Warn("loader requires a filesystem source", "loader", table.Loader, "source", table.Source.String())
		return false
	}

	client, err := e.clientFor(ctx, table)
	if err != nil {
		log.Error("constructing object-store client", "table", table.Name, "error", err)
		return false
	}

	localPath, cleanup, err := cloudstore.Fetch(ctx, client, spec.Path)
	defer cleanup()
	if err != nil {
		log.Error("fetching source file", "table", table.Name, "path", spec.Path, "error", err)
		return false
	}

	blocks, err := Run(table, spec, localPath, e.BlockMaxRows, e.Registry)
	if err != nil {
		log.Error("ingest pipeline failed", "table", table.Name, "spec_id", spec.ID(), "error", err)
		return false
	}

	if swap {
		e.Blocks.Swap(block.Signature{TableName: table.Name, SpecID: spec.ID()}, blocks)
	} else {
		e.Blocks.Add(blocks)
	}
	return true
}

func (e *Executor) clientFor(ctx context.Context, table *tablespec.TableSpec) (cloudstore.Client, error) {
	switch table.Source {
	case tablespec.SourceLocal:
		return cloudstore.NewLocalClient(table.Location), nil
	case tablespec.SourceS3, tablespec.SourceCustom:
		s3c, err := e.AWS.GetS3ForTable(ctx, table.BucketInfo, table.AccessSpec)
		if err != nil {
			return nil, fmt.Errorf("get S3 client: %w", err)
		}
		return cloudstore.NewS3Client(s3c, table.BucketInfo.Bucket), nil
	default:
		return nil, fmt.Errorf("source %s has no object-store client", table.Source.String())
	}
}
