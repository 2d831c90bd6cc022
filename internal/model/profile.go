package model

import "time"

type Resume struct {
	Text       string     `gorm:"type:text" json:"text"`
	FileName   string     `gorm:"size:255" json:"fileName"`
	ObjectKey  string     `gorm:"size:255" json:"-"`
	UploadedAt *time.Time `json:"uploadedAt"`
}

type SelectedJobRole struct {
	RoleID     *uint      `json:"roleId"`
	RoleName   string     `gorm:"size:150" json:"roleName"`
	SelectedAt *time.Time `json:"selectedAt"`
}

type SkillGapAnalysis struct {
	Gaps       []SkillGap `json:"gaps"`
	Summary    string     `json:"summary"`
	JobRoleID  *uint      `json:"jobRoleId"`
	AnalyzedAt time.Time  `json:"analyzedAt"`
}

type Progress struct {
	OverallCompletion int        `json:"overallCompletion"`
	SkillsCompleted   int        `json:"skillsCompleted"`
	TotalSkills       int        `json:"totalSkills"`
	JobAccessibility  int        `json:"jobAccessibility"`
	LastUpdated       *time.Time `json:"lastUpdated"`
}

// CareerProfile holds everything the system knows about one user's career
// track: resume, selected role, gap analysis, roadmap and derived progress.
// The aggregates are JSON columns; the profile row is the unit of update
// (last writer wins, single-user-at-a-time usage assumed).
type CareerProfile struct {
	BaseModel
	UserID          uint              `gorm:"uniqueIndex;not null" json:"userId"`
	Resume          Resume            `gorm:"embedded;embeddedPrefix:resume_" json:"resume"`
	SelectedJobRole SelectedJobRole   `gorm:"embedded;embeddedPrefix:role_" json:"selectedJobRole"`
	Analysis        *SkillGapAnalysis `gorm:"type:json;serializer:json" json:"analysis,omitempty"`
	Roadmap         *Roadmap          `gorm:"type:json;serializer:json" json:"roadmap,omitempty"`
	Progress        Progress          `gorm:"embedded;embeddedPrefix:progress_" json:"progress"`
}

func (CareerProfile) TableName() string {
	return "career_profiles"
}

func (p *CareerProfile) HasResume() bool {
	return p != nil && p.Resume.Text != ""
}

func (p *CareerProfile) HasAnalysis() bool {
	return p != nil && p.Analysis != nil && len(p.Analysis.Gaps) > 0
}

func (p *CareerProfile) HasRoadmap() bool {
	return p != nil && p.Roadmap != nil && len(p.Roadmap.Steps) > 0
}
