package models

// TutorProperty enumerates the tutor fields a search query may project.
// Any value outside this set is rejected at the boundary.
type TutorProperty string

const (
	TutorPropertyID         TutorProperty = "id"
	TutorPropertyPictureURL TutorProperty = "picture-url"
	TutorPropertyEmail      TutorProperty = "email"
	TutorPropertyFirstName  TutorProperty = "first-name"
	TutorPropertyLastName   TutorProperty = "last-name"
	TutorPropertyRating     TutorProperty = "rating"
	TutorPropertyHeadline   TutorProperty = "headline"
	TutorPropertyBio        TutorProperty = "bio"
	TutorPropertyPostalCode TutorProperty = "postal-code"
	TutorPropertyCity       TutorProperty = "city"
	TutorPropertyProvince   TutorProperty = "province"
	TutorPropertyGeoPoint   TutorProperty = "geo-point"
	TutorPropertyRate       TutorProperty = "rate"
	TutorPropertyCourses    TutorProperty = "courses"
	TutorPropertyLessonType TutorProperty = "lesson-type"
)

// tutorPropertyColumns maps each property to the storage columns backing
// it. lesson-type and geo-point span two columns each.
var tutorPropertyColumns = map[TutorProperty][]string{
	TutorPropertyID:         {"id"},
	TutorPropertyPictureURL: {"picture_url"},
	TutorPropertyEmail:      {"email"},
	TutorPropertyFirstName:  {"first_name"},
	TutorPropertyLastName:   {"last_name"},
	TutorPropertyRating:     {"rating"},
	TutorPropertyHeadline:   {"headline"},
	TutorPropertyBio:        {"bio"},
	TutorPropertyPostalCode: {"postal_code"},
	TutorPropertyCity:       {"city"},
	TutorPropertyProvince:   {"province"},
	TutorPropertyGeoPoint:   {"latitude", "longitude"},
	TutorPropertyRate:       {"rate"},
	TutorPropertyCourses:    {"courses"},
	TutorPropertyLessonType: {"is_online_lesson", "is_in_person_lesson"},
}

// DefaultSearchProjection is applied when the caller requests no
// properties.
var DefaultSearchProjection = []TutorProperty{
	TutorPropertyID,
	TutorPropertyPictureURL,
	TutorPropertyFirstName,
	TutorPropertyLastName,
	TutorPropertyRating,
	TutorPropertyHeadline,
	TutorPropertyCity,
	TutorPropertyProvince,
	TutorPropertyRate,
	TutorPropertyCourses,
}

// Valid reports whether p belongs to the closed enumeration.
func (p TutorProperty) Valid() bool {
	_, ok := tutorPropertyColumns[p]
	return ok
}

// Columns returns the storage columns backing p. Unknown properties map
// to nothing.
func (p TutorProperty) Columns() []string {
	return tutorPropertyColumns[p]
}
