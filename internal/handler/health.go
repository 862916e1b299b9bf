package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/osse101/Materials_Go/internal/database"
	"github.com/osse101/Materials_Go/internal/material"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Materials int    `json:"materials,omitempty"`
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz reports ready once the registry is loaded and, when dbPool is set,
// the snapshot database answers a ping.
func HandleReadyz(source RegistrySource, dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reg := source.Registry()
		if reg.State() != material.StateLoaded {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusUnavailable,
				Message: ErrMsgRegistryNotLoaded,
			})
			return
		}

		if dbPool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := dbPool.Ping(ctx); err != nil {
				slog.Error(LogMsgReadinessFailed, "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  HealthStatusUnavailable,
					Message: ErrMsgDatabaseUnavailable,
				})
				return
			}
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK, Materials: reg.Len()})
	}
}
