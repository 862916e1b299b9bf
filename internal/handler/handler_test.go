package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Materials_Go/internal/material"
)

const woodJSON = `{"type": "material", "ident": "wood", "name": "Wood",
	"bash_resist": 2, "cut_resist": 3, "acid_resist": 4, "elec_resist": 5, "fire_resist": 1,
	"chip_resist": 10, "density": 8, "salvaged_into": "splinter", "repaired_with": "splinter",
	"vitamins": [["calcium", 0.1]], "bash_dmg_verb": "splintered", "cut_dmg_verb": "gouged",
	"dmg_adj": ["scratched", "cut", "chipped", "shattered"]}`

const fleshJSON = `{"ident": "flesh", "name": "Flesh",
	"bash_resist": 1, "cut_resist": 1, "acid_resist": 1, "elec_resist": 1, "fire_resist": 1,
	"chip_resist": 2, "density": 5, "edible": true, "soft": true,
	"bash_dmg_verb": "bruised", "cut_dmg_verb": "cut",
	"dmg_adj": ["bruised", "mutilated", "badly mutilated", "thoroughly mutilated"]}`

// staticSource serves a fixed registry
type staticSource struct {
	reg *material.Registry
}

func (s staticSource) Registry() *material.Registry { return s.reg }

// MockReloader mocks the Reloader interface
type MockReloader struct {
	mock.Mock
}

func (m *MockReloader) Reload(ctx context.Context) (*material.Registry, error) {
	args := m.Called(ctx)
	reg, _ := args.Get(0).(*material.Registry)
	return reg, args.Error(1)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

func newTestRegistry(t *testing.T) *material.Registry {
	t.Helper()
	reg := material.NewRegistry()
	require.NoError(t, reg.LoadObject(json.RawMessage(woodJSON)))
	require.NoError(t, reg.LoadObject(json.RawMessage(fleshJSON)))
	return reg
}

func newTestRouter(source RegistrySource) http.Handler {
	h := NewMaterialHandler(source)
	r := chi.NewRouter()
	r.Get("/api/v1/materials", h.HandleList)
	r.Get("/api/v1/materials/{id}", h.HandleGet)
	r.Get("/api/v1/materials/{id}/resist", h.HandleResist)
	r.Get("/api/v1/materials/{id}/damage", h.HandleDamage)
	r.Get("/api/v1/materials/{id}/burn", h.HandleBurn)
	return r
}

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
