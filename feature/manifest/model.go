package manifest

import (
	"time"

	"github.com/goccy/go-json"
)

// Manifest is a named batch definition stored in the database.
type Manifest struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:191;uniqueIndex;not null"`
	// Mode is "all" or "any".
	Mode string `gorm:"size:8;not null"`
	// Requests is the JSON encoded list or keyed group of requests.
	Requests  string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName pins the table name used by migrations and schema checks.
func (Manifest) TableName() string {
	return "manifests"
}

// View is the JSON representation of a manifest.
type View struct {
	Name      string          `json:"name"`
	Mode      string          `json:"mode"`
	Requests  json.RawMessage `json:"requests"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// View converts m for responses.
func (m *Manifest) View() View {
	return View{
		Name:      m.Name,
		Mode:      m.Mode,
		Requests:  json.RawMessage(m.Requests),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// columns lists the columns Migrate verifies after auto migration.
var columns = []string{"id", "name", "mode", "requests", "created_at", "updated_at"}
