package models

// AuditLog records mutations made by a user for later review.
type AuditLog struct {
	Base
	Username     string `gorm:"type:varchar(255);not null;index" json:"username"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
