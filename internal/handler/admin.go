package handler

import (
	"context"
	"net/http"

	"github.com/osse101/Materials_Go/internal/logger"
	"github.com/osse101/Materials_Go/internal/material"
)

// Reloader rebuilds the serving registry
type Reloader interface {
	Reload(ctx context.Context) (*material.Registry, error)
}

// AdminHandler handles operator endpoints
type AdminHandler struct {
	reloader Reloader
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(reloader Reloader) *AdminHandler {
	return &AdminHandler{reloader: reloader}
}

// ReloadResponse summarizes a successful reload
type ReloadResponse struct {
	Materials int    `json:"materials"`
	State     string `json:"state"`
}

// HandleReload rebuilds the registry from content files and swaps it in.
// On failure the previous registry keeps serving.
// POST /api/v1/admin/reload
func (h *AdminHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Info(LogMsgReloadRequested)

	reg, err := h.reloader.Reload(r.Context())
	if err != nil {
		respondServiceError(w, r, OpReload, err)
		return
	}

	log.Info(LogMsgReloadCompleted, "materials", reg.Len())
	respondJSON(w, http.StatusOK, DataResponse{
		Message: MsgRegistryReloaded,
		Data:    ReloadResponse{Materials: reg.Len(), State: reg.State().String()},
	})
}
