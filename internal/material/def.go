package material

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Materials_Go/internal/domain"
)

// Def is one material definition as written in content files.
// Pointer members distinguish "absent" from zero so copy-from definitions can inherit.
type Def struct {
	Type     string `json:"type" validate:"omitempty,eq=material"`
	Ident    string `json:"ident" validate:"required"`
	CopyFrom string `json:"copy-from"`

	Name *string `json:"name" validate:"required_without=CopyFrom"`

	BashResist *int `json:"bash_resist" validate:"required_without=CopyFrom"`
	CutResist  *int `json:"cut_resist" validate:"required_without=CopyFrom"`
	AcidResist *int `json:"acid_resist" validate:"required_without=CopyFrom"`
	ElecResist *int `json:"elec_resist" validate:"required_without=CopyFrom"`
	FireResist *int `json:"fire_resist" validate:"required_without=CopyFrom"`
	ChipResist *int `json:"chip_resist" validate:"required_without=CopyFrom"`
	Density    *int `json:"density" validate:"required_without=CopyFrom"`

	SalvagedInto *string `json:"salvaged_into"`
	RepairedWith *string `json:"repaired_with"`
	Edible       *bool   `json:"edible"`
	Soft         *bool   `json:"soft"`

	Vitamins []VitaminEntry `json:"vitamins" validate:"dive"`

	BashDmgVerb *string `json:"bash_dmg_verb" validate:"required_without=CopyFrom"`
	CutDmgVerb  *string `json:"cut_dmg_verb" validate:"required_without=CopyFrom"`

	DmgAdj   []string          `json:"dmg_adj" validate:"required_without=CopyFrom"`
	BurnData []domain.BurnData `json:"burn_data"`
}

// VitaminEntry is a [vitamin id, amount per unit] pair
type VitaminEntry struct {
	ID     domain.VitaminID `validate:"required"`
	Amount float64
}

// UnmarshalJSON decodes the two-element array form
func (v *VitaminEntry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf(ErrFmtVitaminPairFormat, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf(ErrFmtVitaminPairFormat, fmt.Errorf("got %d elements", len(pair)))
	}

	var id string
	if err := json.Unmarshal(pair[0], &id); err != nil {
		return fmt.Errorf(ErrFmtVitaminPairFormat, err)
	}
	var amount float64
	if err := json.Unmarshal(pair[1], &amount); err != nil {
		return fmt.Errorf(ErrFmtVitaminPairFormat, err)
	}

	v.ID = domain.VitaminID(id)
	v.Amount = amount
	return nil
}

// MarshalJSON encodes the two-element array form
func (v VitaminEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{string(v.ID), v.Amount})
}

// DecodeDef decodes one JSON material object
func DecodeDef(raw []byte) (Def, error) {
	var def Def
	if err := json.Unmarshal(raw, &def); err != nil {
		return Def{}, fmt.Errorf(ErrMsgDecodeDefFailed, domain.ErrInvalidDefinition, err)
	}
	return def, nil
}

// newDefValidator reports fields by their content names
func newDefValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateDef checks a definition before it touches the registry.
// Missing mandatory members map to ErrMissingField, everything else to ErrInvalidDefinition.
func validateDef(v *validator.Validate, def *Def) error {
	if def.Type != "" && def.Type != TypeName {
		return fmt.Errorf(ErrFmtWrongRecordType, domain.ErrWrongRecordType, def.Type)
	}

	if err := v.Struct(def); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf(ErrMsgDecodeDefFailed, domain.ErrInvalidDefinition, err)
		}

		var missing []string
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required", "required_without":
				if fe.Field() == IDField {
					return fmt.Errorf(ErrFmtMissingFields, domain.ErrMissingField, IDField)
				}
				if strings.Contains(fe.Namespace(), "vitamins") {
					return fmt.Errorf(ErrFmtInvalidField, domain.ErrInvalidDefinition, fe.Namespace(), fe.Tag())
				}
				missing = append(missing, fe.Field())
			default:
				return fmt.Errorf(ErrFmtInvalidField, domain.ErrInvalidDefinition, fe.Field(), fe.Tag())
			}
		}
		return fmt.Errorf(ErrFmtMissingFields, domain.ErrMissingField, strings.Join(missing, ", "))
	}

	if def.DmgAdj != nil && len(def.DmgAdj) != domain.MaxItemDamage {
		return fmt.Errorf(ErrFmtDmgAdjCount, domain.ErrInvalidDamageAdjectives, len(def.DmgAdj))
	}
	if len(def.BurnData) > domain.MaxFieldDensity {
		return fmt.Errorf(ErrFmtBurnLevelCount, domain.ErrTooManyBurnLevels, len(def.BurnData), domain.MaxFieldDensity)
	}

	return nil
}
