package models

// Course is reference data used to validate taught-course names.
// Read-only to this service; rows are seeded at startup.
type Course struct {
	// E.g. "Math 10"
	Name string `gorm:"primaryKey" json:"name"`
	// E.g. "Math"
	Subject string `gorm:"not null" json:"subject"`
}
