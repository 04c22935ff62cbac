package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/assessment-gateway/internal/models"
)

type SubmissionRepository interface {
	FindByAssignment(assignmentID uuid.UUID) ([]models.Submission, error)
	FindGradedByAssignment(assignmentID uuid.UUID) ([]models.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) FindByAssignment(assignmentID uuid.UUID) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.
		Where("assignment_id = ?", assignmentID).
		Order("submitted_at ASC").
		Find(&submissions).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find submissions: %w", err)
	}

	return submissions, nil
}

func (r *submissionRepository) FindGradedByAssignment(assignmentID uuid.UUID) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.
		Where("assignment_id = ? AND status = ? AND score IS NOT NULL", assignmentID, models.SubmissionGraded).
		Order("submitted_at ASC").
		Find(&submissions).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find graded submissions: %w", err)
	}

	return submissions, nil
}
