package models

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionGraded    SubmissionStatus = "graded"
)

type Class struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	TeacherID uuid.UUID `gorm:"type:uuid" json:"teacher_id"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Class) TableName() string {
	return "classes"
}

type Assignment struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClassID     uuid.UUID  `gorm:"type:uuid;not null" json:"class_id"`
	Title       string     `gorm:"type:text;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	TotalPoints int        `gorm:"not null;default:100" json:"total_points"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Class Class `gorm:"foreignKey:ClassID" json:"-"`
}

func (Assignment) TableName() string {
	return "assignments"
}

type Submission struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AssignmentID uuid.UUID        `gorm:"type:uuid;not null;index" json:"assignment_id"`
	StudentID    uuid.UUID        `gorm:"type:uuid;not null" json:"student_id"`
	StudentName  string           `gorm:"type:text" json:"student_name"`
	Score        *float64         `gorm:"type:decimal(6,2)" json:"score,omitempty"`
	Status       SubmissionStatus `gorm:"not null;default:'submitted'" json:"status"`
	SubmittedAt  time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"submitted_at"`

	Assignment Assignment `gorm:"foreignKey:AssignmentID" json:"-"`
}

func (Submission) TableName() string {
	return "submissions"
}
