package models

import (
	"strings"
	"time"
)

// Analysis is one persisted resume analysis. Rows are append-only:
// nothing in the service updates or deletes them after Create.
type Analysis struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Filename        string    `gorm:"type:text;not null" json:"filename"`
	Skills          string    `gorm:"type:text" json:"skills"`
	JobDescription  string    `gorm:"type:text" json:"job_description"`
	MatchPercentage float64   `gorm:"type:real" json:"match_percentage"`
	AnalysisDate    time.Time `gorm:"autoCreateTime" json:"analysis_date"`
}

func (Analysis) TableName() string {
	return "analysis_results"
}

// SkillList splits the comma-joined skills column back into a slice.
func (a *Analysis) SkillList() []string {
	if a.Skills == "" {
		return nil
	}
	return strings.Split(a.Skills, ",")
}

// JoinSkills is the canonical encoding of a skill list for storage.
func JoinSkills(skills []string) string {
	return strings.Join(skills, ",")
}
