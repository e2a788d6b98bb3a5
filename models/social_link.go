package models

import "github.com/google/uuid"

// Icon keys the sidebar knows how to render. Anything else falls back to
// IconKeyFallback so an unknown platform still gets a generic link glyph.
const IconKeyFallback = "link"

var knownIconKeys = map[string]struct{}{
	"github":    {},
	"linkedin":  {},
	"twitter":   {},
	"facebook":  {},
	"instagram": {},
	"youtube":   {},
	"medium":    {},
	"dribbble":  {},
	"behance":   {},
	"email":     {},
	"link":      {},
}

// ResolveIconKey maps a stored icon key to one the renderer supports.
func ResolveIconKey(key string) string {
	if _, ok := knownIconKeys[key]; ok {
		return key
	}
	return IconKeyFallback
}

// SocialLink is a sidebar/contact link. Listings are ordered by sortOrder
// ascending with id as tiebreaker; only active links appear publicly.
type SocialLink struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Platform  string    `json:"platform" db:"platform" gorm:"type:text;not null"`
	URL       string    `json:"url" db:"url" gorm:"type:text;not null"`
	Label     string    `json:"label" db:"label" gorm:"type:text;not null;default:''"`
	IconKey   string    `json:"iconKey" db:"icon_key" gorm:"type:text;not null;default:'link'"`
	SortOrder int       `json:"sortOrder" db:"sort_order" gorm:"not null;default:0"`
	Active    bool      `json:"active" db:"active" gorm:"not null;default:true"`
}
