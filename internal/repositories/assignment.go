package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/assessment-gateway/internal/models"
)

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("record not found")

type AssignmentRepository interface {
	FindByID(id uuid.UUID) (*models.Assignment, error)
	FindClass(id uuid.UUID) (*models.Class, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

// FindByID implements AssignmentRepository.
func (r *assignmentRepository) FindByID(id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.Where("id = ?", id).First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assignment %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}

	return &assignment, nil
}

// FindClass implements AssignmentRepository.
func (r *assignmentRepository) FindClass(id uuid.UUID) (*models.Class, error) {
	var class models.Class
	if err := r.db.Where("id = ?", id).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("class %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find class: %w", err)
	}

	return &class, nil
}
