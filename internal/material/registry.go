package material

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Materials_Go/internal/diagnostics"
	"github.com/osse101/Materials_Go/internal/domain"
	"github.com/osse101/Materials_Go/internal/i18n"
	"github.com/osse101/Materials_Go/internal/metrics"
	"github.com/osse101/Materials_Go/internal/registry"
)

// State reports whether any material has been loaded
type State int

const (
	StateUnloaded State = iota
	StateLoaded
)

func (s State) String() string {
	if s == StateLoaded {
		return "loaded"
	}
	return "unloaded"
}

// ItemCatalog answers whether an item type identifier is defined
type ItemCatalog interface {
	TypeIsDefined(id string) bool
}

// itemLister is implemented by catalogs that can offer did-you-mean candidates
type itemLister interface {
	IDs() []string
}

// Registry holds every loaded material keyed by ident.
// It is not safe for concurrent mutation; readers should share a Registry through a Store.
type Registry struct {
	factory  *registry.Factory[*Material]
	tr       i18n.Translator
	validate *validator.Validate
	log      *slog.Logger
	null     *Material
}

// Option configures a Registry
type Option func(*Registry)

// WithTranslator sets the translator applied to user-facing strings at load time
func WithTranslator(tr i18n.Translator) Option {
	return func(r *Registry) {
		if tr != nil {
			r.tr = tr
		}
	}
}

// WithLogger sets the logger used for load events
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		factory:  registry.NewFactory[*Material](TypeName, IDField),
		tr:       i18n.Passthrough{},
		validate: newDefValidator(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.null = newMaterial(r.tr)
	return r
}

// Load validates one definition and stores it, replacing any material with the same ident
func (r *Registry) Load(def Def) error {
	m, err := r.build(&def)
	if err != nil {
		return fmt.Errorf(ErrMsgDefinitionFailed, def.Ident, err)
	}

	if replaced := r.factory.Insert(m.id, m); replaced {
		r.log.Debug(LogMsgMaterialReplaced, "ident", m.id)
	} else {
		r.log.Debug(LogMsgMaterialLoaded, "ident", m.id)
	}

	metrics.MaterialDefsApplied.Inc()
	return nil
}

// LoadObject decodes and loads a single JSON material object
func (r *Registry) LoadObject(raw json.RawMessage) error {
	def, err := DecodeDef(raw)
	if err != nil {
		return err
	}
	return r.Load(def)
}

// LoadDefs loads definitions in order, stopping at the first failure
func (r *Registry) LoadDefs(defs []Def) error {
	for _, def := range defs {
		if err := r.Load(def); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) build(def *Def) (*Material, error) {
	if err := validateDef(r.validate, def); err != nil {
		return nil, err
	}

	var m *Material
	if def.CopyFrom != "" {
		base, err := r.factory.Get(def.CopyFrom)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtUnknownCopyFrom, domain.ErrUnknownCopyFrom, def.CopyFrom)
		}
		m = base.clone()
	} else {
		m = newMaterial(r.tr)
	}
	m.id = def.Ident

	if def.Name != nil {
		m.name = r.tr.Translate(*def.Name)
	}

	setInt(&m.bashResist, def.BashResist)
	setInt(&m.cutResist, def.CutResist)
	setInt(&m.acidResist, def.AcidResist)
	setInt(&m.elecResist, def.ElecResist)
	setInt(&m.fireResist, def.FireResist)
	setInt(&m.chipResist, def.ChipResist)
	setInt(&m.density, def.Density)

	if def.SalvagedInto != nil {
		m.salvagedInto = domain.ItemRefOf(*def.SalvagedInto)
	}
	if def.RepairedWith != nil {
		m.repairedWith = domain.ItemRefOf(*def.RepairedWith)
	}
	if def.Edible != nil {
		m.edible = *def.Edible
	}
	if def.Soft != nil {
		m.soft = *def.Soft
	}

	for _, v := range def.Vitamins {
		m.vitamins[v.ID] = v.Amount
	}

	if def.BashDmgVerb != nil {
		m.bashDmgVerb = r.tr.Translate(*def.BashDmgVerb)
	}
	if def.CutDmgVerb != nil {
		m.cutDmgVerb = r.tr.Translate(*def.CutDmgVerb)
	}
	if def.DmgAdj != nil {
		for i, adj := range def.DmgAdj {
			m.dmgAdj[i] = r.tr.Translate(adj)
		}
	}

	// Levels not given are always derived from this record's own fire resistance
	m.burnData = synthesizeBurnData(def.BurnData, m.fireResist)

	return m, nil
}

// synthesizeBurnData fills every intensity level. Levels without an explicit entry
// burn when fire resistance does not exceed the level index.
func synthesizeBurnData(explicit []domain.BurnData, fireResist int) [domain.MaxFieldDensity]domain.BurnData {
	var out [domain.MaxFieldDensity]domain.BurnData
	for i := range out {
		if i < len(explicit) {
			out[i] = explicit[i]
			continue
		}
		if fireResist <= i {
			out[i].Burn = 1
		}
	}
	return out
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// Check reports content defects to sink and returns how many were reported.
// Materials are visited in ident order; a failing check never stops the others.
func (r *Registry) Check(items ItemCatalog, sink diagnostics.Sink) int {
	var candidates []string
	if lister, ok := items.(itemLister); ok {
		candidates = lister.IDs()
	}

	reported := 0
	report := func(format string, ref domain.ItemRef, args ...any) {
		msg := fmt.Sprintf(format, args...)
		if id, ok := ref.ID(); ok {
			if hint := closestID(id, candidates); hint != "" {
				msg += fmt.Sprintf(DiagFmtSuggestionSuffix, hint)
			}
		}
		sink.Reportf("%s", msg)
		reported++
	}

	for _, id := range r.factory.SortedIDs() {
		m, _ := r.factory.Get(id)

		if m.name == "" {
			report(DiagFmtNoName, domain.NoItem, m.id)
		}
		if !refDefined(items, m.salvagedInto) {
			report(DiagFmtInvalidSalvage, m.salvagedInto, m.salvagedInto, m.id)
		}
		if !refDefined(items, m.repairedWith) {
			report(DiagFmtInvalidRepair, m.repairedWith, m.repairedWith, m.id)
		}
	}

	r.log.Info(LogMsgCheckCompleted, "materials", r.factory.Len(), "diagnostics", reported)
	return reported
}

func refDefined(items ItemCatalog, ref domain.ItemRef) bool {
	id, ok := ref.ID()
	if !ok {
		return true
	}
	return items != nil && items.TypeIsDefined(id)
}

// Reset removes every material and returns the registry to the unloaded state
func (r *Registry) Reset() {
	r.factory.Reset()
	r.log.Debug(LogMsgRegistryReset)
}

// Get returns the material stored under id
func (r *Registry) Get(id string) (*Material, error) {
	m, err := r.factory.Get(id)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", domain.ErrMaterialNotFound, id)
		}
		return nil, err
	}
	return m, nil
}

// IsValid reports whether a material with id is loaded
func (r *Registry) IsValid(id string) bool {
	return r.factory.IsValid(id)
}

// Obj returns the material stored under id, or the default null material when unknown
func (r *Registry) Obj(id string) *Material {
	if m, err := r.factory.Get(id); err == nil {
		return m
	}
	return r.null
}

// All returns every loaded material sorted by ident
func (r *Registry) All() []*Material {
	ids := r.factory.SortedIDs()
	out := make([]*Material, 0, len(ids))
	for _, id := range ids {
		m, _ := r.factory.Get(id)
		out = append(out, m)
	}
	return out
}

// Len returns the number of loaded materials
func (r *Registry) Len() int {
	return r.factory.Len()
}

// State returns StateLoaded once at least one material is stored
func (r *Registry) State() State {
	if r.factory.Len() == 0 {
		return StateUnloaded
	}
	return StateLoaded
}
