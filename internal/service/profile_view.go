package service

import (
	"skillbridge_backend/internal/model"
)

// ProfileView is the outward shape of a career profile. The roadmap is
// sanitized so quiz answers never leave the server before submission.
type ProfileView struct {
	ID              uint                    `json:"id"`
	UserID          uint                    `json:"userId"`
	Resume          model.Resume            `json:"resume"`
	SelectedJobRole model.SelectedJobRole   `json:"selectedJobRole"`
	Analysis        *model.SkillGapAnalysis `json:"analysis,omitempty"`
	Roadmap         *SanitizedRoadmap       `json:"roadmap,omitempty"`
	Progress        model.Progress          `json:"progress"`
}

func NewProfileView(p *model.CareerProfile) ProfileView {
	view := ProfileView{
		ID:              p.ID,
		UserID:          p.UserID,
		Resume:          p.Resume,
		SelectedJobRole: p.SelectedJobRole,
		Analysis:        p.Analysis,
		Progress:        p.Progress,
	}
	if p.Roadmap != nil {
		view.Roadmap = sanitizeRoadmap(p.Roadmap)
	}
	return view
}
