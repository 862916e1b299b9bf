package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Materials_Go/internal/domain"
	"github.com/osse101/Materials_Go/internal/material"
)

// RegistrySource provides the registry currently serving reads
type RegistrySource interface {
	Registry() *material.Registry
}

// MaterialHandler serves read-only material queries
type MaterialHandler struct {
	source RegistrySource
}

// NewMaterialHandler creates a new MaterialHandler
func NewMaterialHandler(source RegistrySource) *MaterialHandler {
	return &MaterialHandler{source: source}
}

// MaterialSummary is a list entry
type MaterialSummary struct {
	Ident   string `json:"ident"`
	Name    string `json:"name"`
	Density int    `json:"density"`
	Edible  bool   `json:"edible"`
	Soft    bool   `json:"soft"`
}

// ResistResponse reports a material's resistance to one damage type
type ResistResponse struct {
	Ident      string `json:"ident"`
	DamageType string `json:"damage_type"`
	Resist     int    `json:"resist"`
}

// DamageResponse reports the adjective for a damage level
type DamageResponse struct {
	Ident     string `json:"ident"`
	Level     int    `json:"level"`
	Adjective string `json:"adjective"`
}

// BurnResponse reports burn behaviour at a field intensity
type BurnResponse struct {
	Ident     string          `json:"ident"`
	Intensity int             `json:"intensity"`
	BurnData  domain.BurnData `json:"burn_data"`
}

type listQuery struct {
	Edible string `query:"edible" validate:"omitempty,oneof=true false"`
	Soft   string `query:"soft" validate:"omitempty,oneof=true false"`
}

type resistQuery struct {
	Type string `query:"type" validate:"required,damage_type"`
}

type levelQuery struct {
	Level *int `query:"level" validate:"required"`
}

type intensityQuery struct {
	Intensity *int `query:"intensity" validate:"required"`
}

// HandleList returns every loaded material, optionally filtered
// GET /api/v1/materials?edible=&soft=
func (h *MaterialHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := listQuery{
		Edible: GetOptionalQueryParam(r, "edible", ""),
		Soft:   GetOptionalQueryParam(r, "soft", ""),
	}
	if !validateQuery(w, r, &q) {
		return
	}

	all := h.source.Registry().All()
	out := make([]MaterialSummary, 0, len(all))
	for _, m := range all {
		if !matchBool(q.Edible, m.Edible()) || !matchBool(q.Soft, m.Soft()) {
			continue
		}
		out = append(out, MaterialSummary{
			Ident:   m.Ident(),
			Name:    m.Name(),
			Density: m.Density(),
			Edible:  m.Edible(),
			Soft:    m.Soft(),
		})
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: out})
}

// HandleGet returns one material in full
// GET /api/v1/materials/{id}
func (h *MaterialHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	m, ok := h.lookup(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, m.View())
}

// HandleResist returns the resistance against the damage type in ?type=
// GET /api/v1/materials/{id}/resist?type=bash
func (h *MaterialHandler) HandleResist(w http.ResponseWriter, r *http.Request) {
	q := resistQuery{Type: r.URL.Query().Get("type")}
	if !validateQuery(w, r, &q) {
		return
	}
	m, ok := h.lookup(w, r)
	if !ok {
		return
	}

	dt, err := domain.ParseDamageType(q.Type)
	if err != nil {
		respondServiceError(w, r, OpResist, err)
		return
	}

	respondJSON(w, http.StatusOK, ResistResponse{
		Ident:      m.Ident(),
		DamageType: dt.String(),
		Resist:     m.DamResist(dt),
	})
}

// HandleDamage returns the damage adjective for ?level=
// GET /api/v1/materials/{id}/damage?level=2
func (h *MaterialHandler) HandleDamage(w http.ResponseWriter, r *http.Request) {
	level, ok := getIntQueryParam(w, r, "level")
	if !ok {
		return
	}
	if !validateQuery(w, r, &levelQuery{Level: level}) {
		return
	}
	m, ok := h.lookup(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, DamageResponse{
		Ident:     m.Ident(),
		Level:     *level,
		Adjective: m.DmgAdj(*level),
	})
}

// HandleBurn returns burn data for ?intensity=
// GET /api/v1/materials/{id}/burn?intensity=1
func (h *MaterialHandler) HandleBurn(w http.ResponseWriter, r *http.Request) {
	intensity, ok := getIntQueryParam(w, r, "intensity")
	if !ok {
		return
	}
	if !validateQuery(w, r, &intensityQuery{Intensity: intensity}) {
		return
	}
	m, ok := h.lookup(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, BurnResponse{
		Ident:     m.Ident(),
		Intensity: *intensity,
		BurnData:  m.BurnData(*intensity),
	})
}

func (h *MaterialHandler) lookup(w http.ResponseWriter, r *http.Request) (*material.Material, bool) {
	m, err := h.source.Registry().Get(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, OpGetMaterial, err)
		return nil, false
	}
	return m, true
}

func matchBool(filter string, value bool) bool {
	if filter == "" {
		return true
	}
	want, _ := strconv.ParseBool(filter)
	return want == value
}
