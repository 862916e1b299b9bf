// Package material loads, validates and serves material definitions: the substances
// (wood, steel, cotton, ...) objects are made of, with their damage resistances,
// burn behaviour, salvage/repair links and descriptive text.
package material

import (
	"encoding/json"
	"maps"
	"slices"
	"sort"

	"github.com/osse101/Materials_Go/internal/domain"
	"github.com/osse101/Materials_Go/internal/i18n"
)

// Material is one loaded material definition. It is read-only once stored in a Registry.
type Material struct {
	id   string
	name string

	bashResist int
	cutResist  int
	acidResist int
	elecResist int
	fireResist int
	chipResist int
	density    int

	salvagedInto domain.ItemRef
	repairedWith domain.ItemRef

	edible bool
	soft   bool

	vitamins map[domain.VitaminID]float64

	bashDmgVerb string
	cutDmgVerb  string
	dmgAdj      [domain.MaxItemDamage]string
	burnData    [domain.MaxFieldDensity]domain.BurnData
}

// newMaterial returns the default material: null id, generic verbs and adjectives
func newMaterial(tr i18n.Translator) *Material {
	m := &Material{
		id:          domain.NullID,
		bashDmgVerb: tr.Translate(DefaultDmgVerb),
		cutDmgVerb:  tr.Translate(DefaultDmgVerb),
		vitamins:    make(map[domain.VitaminID]float64),
	}
	for i, adj := range DefaultDmgAdj {
		m.dmgAdj[i] = tr.Translate(adj)
	}
	return m
}

// clone returns a deep copy used as the base of copy-from definitions
func (m *Material) clone() *Material {
	c := *m
	c.vitamins = maps.Clone(m.vitamins)
	if c.vitamins == nil {
		c.vitamins = make(map[domain.VitaminID]float64)
	}
	return &c
}

// Ident returns the material identifier
func (m *Material) Ident() string { return m.id }

// Name returns the localized display name
func (m *Material) Name() string { return m.name }

func (m *Material) BashResist() int { return m.bashResist }
func (m *Material) CutResist() int  { return m.cutResist }
func (m *Material) AcidResist() int { return m.acidResist }
func (m *Material) ElecResist() int { return m.elecResist }
func (m *Material) FireResist() int { return m.fireResist }
func (m *Material) ChipResist() int { return m.chipResist }
func (m *Material) Density() int    { return m.density }

// SalvagedInto returns the item type an object of this material breaks down into
func (m *Material) SalvagedInto() domain.ItemRef { return m.salvagedInto }

// RepairedWith returns the item type used to repair objects of this material
func (m *Material) RepairedWith() domain.ItemRef { return m.repairedWith }

func (m *Material) Edible() bool { return m.edible }
func (m *Material) Soft() bool   { return m.soft }

// Vitamins returns a copy of the vitamin amounts per unit of material
func (m *Material) Vitamins() map[domain.VitaminID]float64 {
	return maps.Clone(m.vitamins)
}

// Vitamin returns the amount of one vitamin, 0 when absent
func (m *Material) Vitamin(id domain.VitaminID) float64 {
	return m.vitamins[id]
}

func (m *Material) BashDmgVerb() string { return m.bashDmgVerb }
func (m *Material) CutDmgVerb() string  { return m.cutDmgVerb }

// DamResist returns the resistance against a damage type.
// Damage types without a stored resistance resist nothing.
func (m *Material) DamResist(dt domain.DamageType) int {
	switch dt {
	case domain.DamageBash:
		return m.bashResist
	case domain.DamageCut:
		return m.cutResist
	case domain.DamageAcid:
		return m.acidResist
	case domain.DamageElectric:
		return m.elecResist
	case domain.DamageHeat:
		return m.fireResist
	default:
		return 0
	}
}

// DmgAdj returns the adjective describing an object of this material at a damage level.
// Undamaged (or reinforced) objects get no adjective; levels above the maximum clamp.
func (m *Material) DmgAdj(damage int) string {
	if damage <= 0 {
		return ""
	}
	return m.dmgAdj[min(damage, domain.MaxItemDamage)-1]
}

// DmgAdjs returns all damage adjectives from lightest to heaviest
func (m *Material) DmgAdjs() [domain.MaxItemDamage]string {
	return m.dmgAdj
}

// BurnData returns the burn behaviour at a field intensity.
// Intensities are 1-based; values below 1 read level 1 and values above the maximum read the last level.
func (m *Material) BurnData(intensity int) domain.BurnData {
	return m.burnData[min(max(intensity, 1), domain.MaxFieldDensity)-1]
}

// BurnLevels returns burn data for every intensity level in order
func (m *Material) BurnLevels() [domain.MaxFieldDensity]domain.BurnData {
	return m.burnData
}

// View is the serialized form of a material
type View struct {
	Ident        string            `json:"ident"`
	Name         string            `json:"name"`
	BashResist   int               `json:"bash_resist"`
	CutResist    int               `json:"cut_resist"`
	AcidResist   int               `json:"acid_resist"`
	ElecResist   int               `json:"elec_resist"`
	FireResist   int               `json:"fire_resist"`
	ChipResist   int               `json:"chip_resist"`
	Density      int               `json:"density"`
	SalvagedInto domain.ItemRef    `json:"salvaged_into"`
	RepairedWith domain.ItemRef    `json:"repaired_with"`
	Edible       bool              `json:"edible"`
	Soft         bool              `json:"soft"`
	Vitamins     []VitaminEntry    `json:"vitamins"`
	BashDmgVerb  string            `json:"bash_dmg_verb"`
	CutDmgVerb   string            `json:"cut_dmg_verb"`
	DmgAdj       []string          `json:"dmg_adj"`
	BurnData     []domain.BurnData `json:"burn_data"`
}

// View returns the serialized form of the material. Vitamins are sorted by id.
func (m *Material) View() View {
	vitamins := make([]VitaminEntry, 0, len(m.vitamins))
	for id, amount := range m.vitamins {
		vitamins = append(vitamins, VitaminEntry{ID: id, Amount: amount})
	}
	sort.Slice(vitamins, func(i, j int) bool { return vitamins[i].ID < vitamins[j].ID })

	return View{
		Ident:        m.id,
		Name:         m.name,
		BashResist:   m.bashResist,
		CutResist:    m.cutResist,
		AcidResist:   m.acidResist,
		ElecResist:   m.elecResist,
		FireResist:   m.fireResist,
		ChipResist:   m.chipResist,
		Density:      m.density,
		SalvagedInto: m.salvagedInto,
		RepairedWith: m.repairedWith,
		Edible:       m.edible,
		Soft:         m.soft,
		Vitamins:     vitamins,
		BashDmgVerb:  m.bashDmgVerb,
		CutDmgVerb:   m.cutDmgVerb,
		DmgAdj:       slices.Clone(m.dmgAdj[:]),
		BurnData:     slices.Clone(m.burnData[:]),
	}
}

// MarshalJSON encodes the material as its View
func (m *Material) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.View())
}
