package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Materials_Go/internal/diagnostics"
	"github.com/osse101/Materials_Go/internal/i18n"
	"github.com/osse101/Materials_Go/internal/item"
	"github.com/osse101/Materials_Go/internal/logger"
	"github.com/osse101/Materials_Go/internal/material"
)

// ErrStrictDiagnostics is returned by a strict build when the check reported problems
var ErrStrictDiagnostics = errors.New("material check failed")

// ContentPaths locates the files a registry is built from
type ContentPaths struct {
	MaterialsDir string
	ItemsPath    string
	LocalePath   string // empty serves untranslated text
}

// BuildResult is a loaded and checked registry
type BuildResult struct {
	Registry    *material.Registry
	Catalog     *item.Catalog
	Diagnostics int
}

// LoadTranslator loads the locale file at path, or returns a passthrough translator for an empty path
func LoadTranslator(path string) (i18n.Translator, error) {
	if path == "" {
		return i18n.Passthrough{}, nil
	}
	tr, err := i18n.LoadLocaleFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadLocale, err)
	}
	return tr, nil
}

// BuildRegistry runs the load and check phases: item catalog, locale, material files,
// then the reference check reported to sink. Check problems never fail the build.
func BuildRegistry(ctx context.Context, paths ContentPaths, sink diagnostics.Sink) (*BuildResult, error) {
	ctx = logger.WithRunID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuildingRegistry, "materials_dir", paths.MaterialsDir, "items", paths.ItemsPath)

	catalog := item.NewCatalog(nil)
	if paths.ItemsPath != "" {
		var err error
		if catalog, err = item.LoadCatalog(paths.ItemsPath); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
		}
	}

	tr, err := LoadTranslator(paths.LocalePath)
	if err != nil {
		return nil, err
	}

	defs, err := material.NewLoader().LoadDir(ctx, paths.MaterialsDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadMaterials, err)
	}

	reg := material.NewRegistry(material.WithTranslator(tr), material.WithLogger(log))
	if err := reg.LoadDefs(defs); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedApplyMaterials, err)
	}

	problems := reg.Check(catalog, sink)
	if problems > 0 {
		log.Warn(LogMsgDiagnosticsReported, "count", problems)
	}
	log.Info(material.LogMsgRegistryBuilt, "materials", reg.Len(), "items", catalog.Len())

	return &BuildResult{Registry: reg, Catalog: catalog, Diagnostics: problems}, nil
}

// RegistryBuilder returns a build function for material.Store that reports check
// problems to the log. With strict set, any problem fails the build.
func RegistryBuilder(paths ContentPaths, strict bool) material.BuildFunc {
	return func(ctx context.Context) (*material.Registry, error) {
		result, err := BuildRegistry(ctx, paths, diagnostics.NewLogSink(logger.FromContext(ctx)))
		if err != nil {
			return nil, err
		}
		if strict && result.Diagnostics > 0 {
			return nil, fmt.Errorf("%w: "+ErrMsgStrictDiagnostics, ErrStrictDiagnostics, result.Diagnostics)
		}
		return result.Registry, nil
	}
}
