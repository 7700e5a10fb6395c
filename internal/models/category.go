package models

// Category groups tasks under a header row.
type Category struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Collapsed bool    `json:"collapsed"`
	Position  int     `json:"position"`
	DeletedAt *string `json:"deleted_at,omitempty"` // RFC3339 timestamp
}
