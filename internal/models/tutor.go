package models

import (
	"time"

	"github.com/lib/pq"
)

// GeoPoint is the coordinate derived from the tutor's postal code.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Tutor is the optional profile layered on top of a student profile.
// City, Province and the coordinate are derived from PostalCode via
// geocoding and are never set by the client. Rating and IsSearchable are
// system-computed. Nullable columns are pointers so that "unset" is
// distinguishable from a zero value; the searchability predicate depends
// on that distinction.
type Tutor struct {
	ID         string  `gorm:"type:varchar(128);primaryKey" json:"id"`
	PictureURL *string `json:"pictureURL,omitempty"`
	Email      string  `gorm:"not null" json:"email,omitempty"`
	FirstName  string  `gorm:"not null" json:"firstName,omitempty"`
	LastName   string  `gorm:"not null" json:"lastName,omitempty"`

	Rating     *float64 `json:"rating,omitempty"`
	Headline   *string  `json:"headline,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
	PostalCode *string  `json:"postalCode,omitempty"`
	City       *string  `json:"city,omitempty"`
	Province   *string  `json:"province,omitempty"`
	Latitude   *float64 `json:"-"`
	Longitude  *float64 `json:"-"`

	Rate    *int           `json:"rate,omitempty"`
	Courses pq.StringArray `gorm:"type:text[]" json:"courses,omitempty"`

	// IsOnlineLesson and IsInPersonLesson cannot both be unset for the
	// tutor to be searchable.
	IsOnlineLesson   *bool `json:"isOnlineLesson,omitempty"`
	IsInPersonLesson *bool `json:"isInPersonLesson,omitempty"`

	// IsHidden lets a tutor opt out of search results without touching
	// availability. IsSearchable is recomputed on every update.
	IsHidden     bool `json:"isHidden"`
	IsSearchable bool `gorm:"index" json:"isSearchable"`

	CreatedAt time.Time `gorm:"default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// GeoPoint assembles the derived coordinate, or nil when the tutor has
// not been geocoded yet.
func (t *Tutor) GeoPoint() *GeoPoint {
	if t.Latitude == nil || t.Longitude == nil {
		return nil
	}
	return &GeoPoint{Latitude: *t.Latitude, Longitude: *t.Longitude}
}
