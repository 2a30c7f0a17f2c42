package domain

import "time"

// AuditFields is embedded in every entity. CreatedBy/LastUpdatedBy hold the
// acting user's id, or "google" for accounts provisioned through OAuth sign-in.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
