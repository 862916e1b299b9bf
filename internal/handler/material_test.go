package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Materials_Go/internal/domain"
	"github.com/osse101/Materials_Go/internal/material"
)

func TestMaterialHandler_List(t *testing.T) {
	router := newTestRouter(staticSource{reg: newTestRegistry(t)})

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantIdents []string
	}{
		{"all sorted by ident", "/api/v1/materials", http.StatusOK, []string{"flesh", "wood"}},
		{"edible filter", "/api/v1/materials?edible=true", http.StatusOK, []string{"flesh"}},
		{"soft false filter", "/api/v1/materials?soft=false", http.StatusOK, []string{"wood"}},
		{"invalid filter", "/api/v1/materials?edible=maybe", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, router, http.MethodGet, tt.target)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				body := decodeBody[ValidationErrorResponse](t, w)
				assert.Contains(t, body.Fields, "edible")
				return
			}

			body := decodeBody[struct {
				Data []MaterialSummary `json:"data"`
			}](t, w)
			var idents []string
			for _, s := range body.Data {
				idents = append(idents, s.Ident)
			}
			assert.Equal(t, tt.wantIdents, idents)
		})
	}
}

func TestMaterialHandler_Get(t *testing.T) {
	router := newTestRouter(staticSource{reg: newTestRegistry(t)})

	t.Run("found", func(t *testing.T) {
		w := serve(t, router, http.MethodGet, "/api/v1/materials/wood")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		view := decodeBody[material.View](t, w)
		assert.Equal(t, "Wood", view.Name)
		assert.Equal(t, "splinter", view.SalvagedInto.String())
		assert.Equal(t, []string{"scratched", "cut", "chipped", "shattered"}, view.DmgAdj)
		assert.Len(t, view.BurnData, domain.MaxFieldDensity)
	})

	t.Run("not found", func(t *testing.T) {
		w := serve(t, router, http.MethodGet, "/api/v1/materials/mithril")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, ErrMsgMaterialNotFound, decodeBody[ErrorResponse](t, w).Error)
	})
}

func TestMaterialHandler_Resist(t *testing.T) {
	router := newTestRouter(staticSource{reg: newTestRegistry(t)})

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantResist int
		wantType   string
	}{
		{"bash", "/api/v1/materials/wood/resist?type=bash", http.StatusOK, 2, "bash"},
		{"electric", "/api/v1/materials/wood/resist?type=electric", http.StatusOK, 5, "electric"},
		{"fire alias reads heat", "/api/v1/materials/wood/resist?type=fire", http.StatusOK, 1, "heat"},
		{"unstored type resists nothing", "/api/v1/materials/wood/resist?type=cold", http.StatusOK, 0, "cold"},
		{"missing type", "/api/v1/materials/wood/resist", http.StatusBadRequest, 0, ""},
		{"unknown type", "/api/v1/materials/wood/resist?type=plasma", http.StatusBadRequest, 0, ""},
		{"unknown material", "/api/v1/materials/mithril/resist?type=bash", http.StatusNotFound, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, router, http.MethodGet, tt.target)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			body := decodeBody[ResistResponse](t, w)
			assert.Equal(t, tt.wantResist, body.Resist)
			assert.Equal(t, tt.wantType, body.DamageType)
		})
	}
}

func TestMaterialHandler_Damage(t *testing.T) {
	router := newTestRouter(staticSource{reg: newTestRegistry(t)})

	tests := []struct {
		name       string
		level      string
		wantStatus int
		wantAdj    string
	}{
		{"undamaged", "0", http.StatusOK, ""},
		{"reinforced", "-1", http.StatusOK, ""},
		{"first level", "1", http.StatusOK, "scratched"},
		{"last level", "4", http.StatusOK, "shattered"},
		{"clamped above max", "9", http.StatusOK, "shattered"},
		{"not a number", "lots", http.StatusBadRequest, ""},
		{"missing", "", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/api/v1/materials/wood/damage"
			if tt.level != "" {
				target += "?level=" + tt.level
			}
			w := serve(t, router, http.MethodGet, target)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantAdj, decodeBody[DamageResponse](t, w).Adjective)
			}
		})
	}
}

func TestMaterialHandler_Burn(t *testing.T) {
	router := newTestRouter(staticSource{reg: newTestRegistry(t)})

	tests := []struct {
		name      string
		intensity string
		wantBurn  int
	}{
		// fire_resist 1: level index 0 does not burn, 1 and 2 do
		{"intensity one", "1", 0},
		{"intensity two", "2", 1},
		{"below range reads first level", "0", 0},
		{"above range reads last level", "7", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, router, http.MethodGet, "/api/v1/materials/wood/burn?intensity="+tt.intensity)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantBurn, decodeBody[BurnResponse](t, w).BurnData.Burn)
		})
	}

	t.Run("missing intensity", func(t *testing.T) {
		w := serve(t, router, http.MethodGet, "/api/v1/materials/wood/burn")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
