package models

import "time"

// UserType marks whether an identity carries only a student profile or
// a tutor profile layered on top of it.
const (
	UserTypeStudent = "Student"
	UserTypeTutor   = "Tutor"
)

// User is the anchor row for one authenticated identity. It carries no
// fields of its own; the student and tutor rows are keyed by the same id.
// Created once at registration, never mutated, never deleted.
type User struct {
	ID        string    `gorm:"type:varchar(128);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"default:now()" json:"-"`

	// Relations
	Student *Student `gorm:"foreignKey:ID;references:ID" json:"-"`
	Tutor   *Tutor   `gorm:"foreignKey:ID;references:ID" json:"-"`
}
