package material

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/osse101/Materials_Go/internal/domain"
	"github.com/osse101/Materials_Go/internal/logger"
	"github.com/osse101/Materials_Go/internal/metrics"
	"github.com/osse101/Materials_Go/internal/validation"
)

// Loader reads material definitions from content files
type Loader interface {
	LoadFile(path string) ([]Def, error)
	LoadFiles(ctx context.Context, paths []string) ([]Def, error)
	LoadDir(ctx context.Context, dir string) ([]Def, error)
}

type fileLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a Loader validating files against the material schema
func NewLoader() Loader {
	return &fileLoader{
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      SchemaPath,
	}
}

// LoadFile reads one JSON or YAML file holding a material object or an array of them
func (l *fileLoader) LoadFile(path string) ([]Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ExtJSON:
	case ExtYAML, ExtYML:
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgParseFileFailed, path, err)
		}
	default:
		return nil, fmt.Errorf(ErrFmtUnsupportedFormat, domain.ErrUnsupportedFormat, path)
	}

	if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	defs, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, path, err)
	}
	return defs, nil
}

// LoadFiles parses files concurrently and returns their definitions in path order
func (l *fileLoader) LoadFiles(ctx context.Context, paths []string) (defs []Def, err error) {
	started := time.Now()
	defer func() { metrics.RecordContentLoad(LoadKind, started, err) }()

	perFile := make([][]Def, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fileDefs, err := l.LoadFile(path)
			if err != nil {
				return fmt.Errorf(ErrMsgLoadFileFailed, path, err)
			}
			perFile[i] = fileDefs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, fileDefs := range perFile {
		defs = append(defs, fileDefs...)
	}

	logger.FromContext(ctx).Info(LogMsgFilesParsed, "files", len(paths), "definitions", len(defs))
	return defs, nil
}

// LoadDir loads every material file in dir in lexical order
func (l *fileLoader) LoadDir(ctx context.Context, dir string) ([]Def, error) {
	paths, err := ContentFiles(dir)
	if err != nil {
		return nil, err
	}
	return l.LoadFiles(ctx, paths)
}

// ContentFiles lists the JSON and YAML files directly inside dir, sorted by name
func ContentFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadDirFailed, dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ExtJSON, ExtYAML, ExtYML:
			paths = append(paths, filepath.Join(dir, entry.Name()))
		default:
			slog.Debug(LogMsgSkippedFile, "path", entry.Name())
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// decodeDocument accepts a single material object or an array of them
func decodeDocument(data []byte) ([]Def, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		def, err := DecodeDef(trimmed)
		if err != nil {
			return nil, err
		}
		return []Def{def}, nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		return nil, err
	}

	defs := make([]Def, 0, len(raws))
	for i, raw := range raws {
		def, err := DecodeDef(raw)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtEntryDecodeFailed, i, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// yamlToJSON re-encodes a YAML document so it takes the same schema and decode path as JSON
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
