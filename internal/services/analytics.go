package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/google/uuid"

	"alfredoptarigan/assessment-gateway/internal/models"
	"alfredoptarigan/assessment-gateway/internal/repositories"
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

type AnalyticsService interface {
	AssignmentAnalytics(assignmentID uuid.UUID) (*models.AssignmentAnalytics, error)
	Leaderboard(assignmentID uuid.UUID, limit int) (*models.Leaderboard, error)
}

type analyticsService struct {
	assignmentRepo repositories.AssignmentRepository
	submissionRepo repositories.SubmissionRepository
}

func NewAnalyticsService(
	assignmentRepo repositories.AssignmentRepository,
	submissionRepo repositories.SubmissionRepository,
) AnalyticsService {
	return &analyticsService{
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
	}
}

var scoreBuckets = []struct {
	label string
	floor float64
}{
	{"0-59", 0},
	{"60-69", 60},
	{"70-79", 70},
	{"80-89", 80},
	{"90-100", 90},
}

// AssignmentAnalytics implements AnalyticsService.
func (s *analyticsService) AssignmentAnalytics(assignmentID uuid.UUID) (*models.AssignmentAnalytics, error) {
	assignment, err := s.assignmentRepo.FindByID(assignmentID)
	if err != nil {
		return nil, err
	}

	className := ""
	if class, err := s.assignmentRepo.FindClass(assignment.ClassID); err == nil {
		className = class.Name
	} else if !errors.Is(err, repositories.ErrNotFound) {
		log.Printf("⚠️  Failed to load class %s: %v", assignment.ClassID, err)
	}

	submissions, err := s.submissionRepo.FindByAssignment(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}

	result := &models.AssignmentAnalytics{
		AssignmentID:     assignment.ID.String(),
		Title:            assignment.Title,
		ClassName:        className,
		TotalSubmissions: len(submissions),
		Distribution:     make([]models.ScoreBucket, len(scoreBuckets)),
	}
	for i, b := range scoreBuckets {
		result.Distribution[i].Range = b.label
	}

	var sum float64
	for _, sub := range submissions {
		if !isGraded(sub) {
			continue
		}

		pct := percentage(*sub.Score, assignment.TotalPoints)
		if result.GradedSubmissions == 0 {
			result.HighestScore = pct
			result.LowestScore = pct
		}
		result.HighestScore = math.Max(result.HighestScore, pct)
		result.LowestScore = math.Min(result.LowestScore, pct)
		result.GradedSubmissions++
		sum += pct

		result.Distribution[bucketIndex(pct)].Count++
	}

	if result.GradedSubmissions > 0 {
		result.AverageScore = round2(sum / float64(result.GradedSubmissions))
	}

	return result, nil
}

// Leaderboard implements AnalyticsService.
func (s *analyticsService) Leaderboard(assignmentID uuid.UUID, limit int) (*models.Leaderboard, error) {
	assignment, err := s.assignmentRepo.FindByID(assignmentID)
	if err != nil {
		return nil, err
	}

	submissions, err := s.submissionRepo.FindGradedByAssignment(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load graded submissions: %w", err)
	}

	graded := submissions[:0:0]
	for _, sub := range submissions {
		if isGraded(sub) {
			graded = append(graded, sub)
		}
	}

	return &models.Leaderboard{
		AssignmentID: assignment.ID.String(),
		Entries:      rankSubmissions(graded, assignment.TotalPoints, clampLimit(limit)),
	}, nil
}

// rankSubmissions orders by score descending, earlier submissions first on
// ties, and assigns competition ranks (1, 2, 2, 4).
func rankSubmissions(submissions []models.Submission, totalPoints, limit int) []models.LeaderboardEntry {
	sorted := append([]models.Submission(nil), submissions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := *sorted[i].Score, *sorted[j].Score
		if si != sj {
			return si > sj
		}
		return sorted[i].SubmittedAt.Before(sorted[j].SubmittedAt)
	})

	entries := make([]models.LeaderboardEntry, 0, min(limit, len(sorted)))
	rank := 0
	for i, sub := range sorted {
		if i >= limit {
			break
		}
		if i == 0 || *sub.Score != *sorted[i-1].Score {
			rank = i + 1
		}
		entries = append(entries, models.LeaderboardEntry{
			Rank:        rank,
			StudentID:   sub.StudentID.String(),
			StudentName: sub.StudentName,
			Score:       *sub.Score,
			Percentage:  percentage(*sub.Score, totalPoints),
			SubmittedAt: sub.SubmittedAt,
		})
	}

	return entries
}

func isGraded(sub models.Submission) bool {
	return sub.Status == models.SubmissionGraded && sub.Score != nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		return MaxLeaderboardLimit
	}
	return limit
}

// percentage converts a raw score to 0-100. A non-positive total means the
// score is already a percentage.
func percentage(score float64, totalPoints int) float64 {
	if totalPoints <= 0 {
		return round2(score)
	}
	return round2(score / float64(totalPoints) * 100)
}

func bucketIndex(pct float64) int {
	for i := len(scoreBuckets) - 1; i > 0; i-- {
		if pct >= scoreBuckets[i].floor {
			return i
		}
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
