package models

import "time"

type AssignmentAnalytics struct {
	AssignmentID      string        `json:"assignmentId"`
	Title             string        `json:"title"`
	ClassName         string        `json:"className"`
	TotalSubmissions  int           `json:"totalSubmissions"`
	GradedSubmissions int           `json:"gradedSubmissions"`
	AverageScore      float64       `json:"averageScore"`
	HighestScore      float64       `json:"highestScore"`
	LowestScore       float64       `json:"lowestScore"`
	Distribution      []ScoreBucket `json:"distribution"`
}

type ScoreBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type Leaderboard struct {
	AssignmentID string             `json:"assignmentId"`
	Entries      []LeaderboardEntry `json:"entries"`
}

type LeaderboardEntry struct {
	Rank        int       `json:"rank"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Score       float64   `json:"score"`
	Percentage  float64   `json:"percentage"`
	SubmittedAt time.Time `json:"submittedAt"`
}
