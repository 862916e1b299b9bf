package domain

// Item represents an item type that materials can be salvaged into or repaired with:
// - InternalName: stable content identifier referenced by materials (e.g., "splinter")
// - PublicName: user-facing name
// - DefaultDisplay: fallback display name
type Item struct {
	InternalName   string   `json:"internal_name"`
	PublicName     string   `json:"public_name"`
	DefaultDisplay string   `json:"default_display"`
	Description    string   `json:"description"`
	BaseValue      int      `json:"base_value"`
	MaxStack       int      `json:"max_stack"`
	Types          []string `json:"types"`
}
