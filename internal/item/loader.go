// Package item loads the catalog of item types that materials reference
// for salvage and repair.
package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/osse101/Materials_Go/internal/domain"
	"github.com/osse101/Materials_Go/internal/metrics"
	"github.com/osse101/Materials_Go/internal/validation"
)

// Sentinel errors for item loader
var (
	ErrDuplicateInternalName = errors.New("duplicate internal name")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for items
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON
type Def struct {
	InternalName   string   `json:"internal_name"`
	PublicName     string   `json:"public_name"`
	Description    string   `json:"description"`
	MaxStack       int      `json:"max_stack"`
	BaseValue      int      `json:"base_value"`
	Tags           []string `json:"tags"`
	Type           []string `json:"type"` // Content type categorization
	DefaultDisplay string   `json:"default_display"`
}

// Loader handles loading and validating item configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the item configuration for errors
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	internalNames := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		if err := validateItemDef(i, &config.Items[i], internalNames); err != nil {
			return err
		}
	}

	return nil
}

func validateItemDef(index int, item *Def, internalNames map[string]bool) error {
	if item.InternalName == "" {
		return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, index)
	}
	// "null" is the no-item reference and can never name a real item
	if item.InternalName == domain.NullID {
		return fmt.Errorf(ErrFmtItemReservedName, ErrInvalidConfig, index, item.InternalName)
	}

	if internalNames[item.InternalName] {
		return fmt.Errorf(ErrFmtDuplicateName, ErrDuplicateInternalName, item.InternalName)
	}
	internalNames[item.InternalName] = true

	if item.PublicName == "" {
		return fmt.Errorf(ErrFmtItemHasEmptyPublic, ErrInvalidConfig, item.InternalName)
	}
	if item.DefaultDisplay == "" {
		return fmt.Errorf(ErrFmtItemHasEmptyDisplay, ErrInvalidConfig, item.InternalName)
	}

	if item.MaxStack < 0 {
		return fmt.Errorf(ErrFmtItemNegativeMaxStack, ErrInvalidConfig, item.InternalName)
	}
	if item.BaseValue < 0 {
		return fmt.Errorf(ErrFmtItemNegativeValue, ErrInvalidConfig, item.InternalName)
	}

	return nil
}

// LoadCatalog loads, validates and indexes an items file
func LoadCatalog(path string) (cat *Catalog, err error) {
	started := time.Now()
	defer func() { metrics.RecordContentLoad(LoadKind, started, err) }()

	loader := NewLoader()
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config); err != nil {
		return nil, err
	}
	return NewCatalog(config), nil
}
