package hcl

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/schoolregistry/internal/config"
	"github.com/vk/schoolregistry/internal/ctxlog"
	"github.com/vk/schoolregistry/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	now func() time.Time
}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{now: time.Now}
}

// Load parses every .hcl file found under paths and merges them in order.
// A path that does not exist is skipped; finding no file at all is not an
// error and yields an empty model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to find settings files: %w", err)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	workdir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	evalCtx := newEvalContext(l.now(), workdir)

	parser := hclparse.NewParser()
	model := &config.Model{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root settingsFile
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		model.Merge(translateSettings(&root, file))
		logger.Debug("Successfully loaded settings from HCL file", "file", file)
	}

	logger.Debug("HCL loading complete.", "files", len(model.Sources), "export_path", model.ExportPath)
	return model, nil
}
