package domain

import (
	"fmt"
	"strings"
)

// Material registry limits
const (
	// MaxFieldDensity is the number of field intensity levels a material carries burn data for
	MaxFieldDensity = 3

	// MaxItemDamage is the number of damage adjective slots per material
	MaxItemDamage = 4

	// NullID is the identifier of the default, unloaded material and of the "no item" reference
	NullID = "null"
)

// VitaminID identifies a vitamin provided by edible materials
type VitaminID string

// BurnData describes how a material behaves at one fire intensity level
type BurnData struct {
	Immune         bool `json:"immune"`
	ChanceInVolume int  `json:"chance"`
	Fuel           int  `json:"fuel"`
	Smoke          int  `json:"smoke"`
	Burn           int  `json:"burn"`
}

// ItemRef is an optional reference to an item type.
// The zero value is NoItem.
type ItemRef struct {
	id  string
	set bool
}

// NoItem is the reference that points at no item type
var NoItem = ItemRef{}

// ItemRefOf builds a reference from a content identifier.
// The "null" identifier and the empty string both map to NoItem.
func ItemRefOf(id string) ItemRef {
	if id == "" || id == NullID {
		return NoItem
	}
	return ItemRef{id: id, set: true}
}

// ID returns the referenced item identifier and whether the reference is set
func (r ItemRef) ID() (string, bool) {
	return r.id, r.set
}

// IsNone reports whether the reference points at no item
func (r ItemRef) IsNone() bool {
	return !r.set
}

// String returns the content identifier, "null" for NoItem
func (r ItemRef) String() string {
	if !r.set {
		return NullID
	}
	return r.id
}

// MarshalText encodes the reference the way content files spell it
func (r ItemRef) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a content identifier into a reference
func (r *ItemRef) UnmarshalText(text []byte) error {
	*r = ItemRefOf(string(text))
	return nil
}

// DamageType enumerates the categories of harm an object can take
type DamageType int

const (
	DamageNull DamageType = iota
	DamageTrue
	DamageBiological
	DamageBash
	DamageCut
	DamageAcid
	DamageStab
	DamageHeat
	DamageCold
	DamageElectric
)

var damageTypeNames = map[DamageType]string{
	DamageNull:       "null",
	DamageTrue:       "true",
	DamageBiological: "biological",
	DamageBash:       "bash",
	DamageCut:        "cut",
	DamageAcid:       "acid",
	DamageStab:       "stab",
	DamageHeat:       "heat",
	DamageCold:       "cold",
	DamageElectric:   "electric",
}

// String returns the content name of the damage type
func (d DamageType) String() string {
	if name, ok := damageTypeNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DamageType(%d)", int(d))
}

// ParseDamageType converts a damage type name into a DamageType.
// "fire" is accepted as an alias for heat.
func ParseDamageType(s string) (DamageType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "fire" {
		return DamageHeat, nil
	}
	for dt, n := range damageTypeNames {
		if n == name {
			return dt, nil
		}
	}
	return DamageNull, fmt.Errorf("%w: '%s'", ErrInvalidDamageType, s)
}
