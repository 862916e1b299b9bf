package sse

// ConnectedPayload is the first event on every stream
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters"`
}

// ReloadPayload is sent after a reload attempt
type ReloadPayload struct {
	Source    string `json:"source,omitempty"` // admin, signal or watch
	Materials int    `json:"materials,omitempty"`
	State     string `json:"state,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SyncPayload is sent after the registry was written to the database
type SyncPayload struct {
	Source    string `json:"source,omitempty"`
	Upserted  int    `json:"upserted"`
	Deleted   int    `json:"deleted"`
	Unchanged bool   `json:"unchanged"`
}
