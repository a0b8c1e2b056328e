package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SocialPlatforms is the fixed set of platforms accepted in SocialLinks.
var SocialPlatforms = []string{"twitter", "facebook", "instagram", "linkedin", "goodreads"}

// SocialLinks maps a platform name to a handle. Stored as JSONB.
type SocialLinks map[string]string

func (s SocialLinks) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *SocialLinks) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into SocialLinks", src)
	}
}

// Author is the domain entity. FullName is the canonical display name and
// uniqueness key (case-insensitive, enforced by a unique index on
// LOWER(full_name)).
type Author struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	FirstName   string      `json:"first_name" db:"first_name"`
	LastName    string      `json:"last_name" db:"last_name"`
	FullName    string      `json:"full_name" db:"full_name"`
	Bio         *string     `json:"bio,omitempty" db:"bio"`
	BirthDate   *time.Time  `json:"birth_date,omitempty" db:"birth_date"`
	Nationality *string     `json:"nationality,omitempty" db:"nationality"`
	Website     *string     `json:"website,omitempty" db:"website"`
	SocialLinks SocialLinks `json:"social_links,omitempty" db:"social_links"`
	PhotoURL    *string     `json:"photo_url,omitempty" db:"photo_url"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}
