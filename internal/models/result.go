package models

import "time"

// AnalysisSummary is what the analyze endpoint returns on success.
type AnalysisSummary struct {
	Skills            []string `json:"skills"`
	MatchPercentage   float64  `json:"match_percentage"`
	ResumeTextPreview string   `json:"resume_text_preview"`
	Filename          string   `json:"filename"`
	MissingSkills     []string `json:"missing_skills,omitempty"`
}

// HistoryEntry is one row of the analysis history, as presented to clients.
type HistoryEntry struct {
	ID              uint      `json:"id"`
	Filename        string    `json:"filename"`
	Skills          string    `json:"skills"`
	MatchPercentage float64   `json:"match_percentage"`
	AnalysisDate    time.Time `json:"analysis_date"`
}
