package service

import (
	"math"
	"time"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
)

type ProgressService struct {
	Profiles *repository.ProfileRepository
}

func NewProgressService(profiles *repository.ProfileRepository) *ProgressService {
	return &ProgressService{Profiles: profiles}
}

// Get returns the user's progress with jobAccessibility freshly derived
// from the roadmap. The derived value is persisted when it moved.
func (s *ProgressService) Get(userID uint) (*model.Progress, error) {
	profile, err := s.Profiles.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}

	accessibility := jobAccessibility(profile)
	if accessibility != profile.Progress.JobAccessibility {
		profile.Progress.JobAccessibility = accessibility
		now := time.Now()
		profile.Progress.LastUpdated = &now
		if err := s.Profiles.Save(profile); err != nil {
			return nil, err
		}
	}

	return &profile.Progress, nil
}

// jobAccessibility measures readiness as the completed share of critical
// and high priority steps. A roadmap with no urgent steps falls back to
// overall completion, and no roadmap at all means zero.
func jobAccessibility(profile *model.CareerProfile) int {
	if !profile.HasRoadmap() {
		return 0
	}

	urgent, completedUrgent := 0, 0
	for _, step := range profile.Roadmap.Steps {
		if step.Priority == model.PriorityCritical || step.Priority == model.PriorityHigh {
			urgent++
			if step.Status == model.StepCompleted {
				completedUrgent++
			}
		}
	}

	if urgent == 0 {
		return profile.Progress.OverallCompletion
	}
	return int(math.Round(float64(completedUrgent) / float64(urgent) * 100))
}

// SkillProgress is one roadmap step's standing in the detailed view.
type SkillProgress struct {
	Skill       string              `json:"skill"`
	Priority    model.SkillPriority `json:"priority"`
	Status      model.StepStatus    `json:"status"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
}

// TimelinePoint is one day's completion count in the 30-day window.
type TimelinePoint struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

type DetailedProgress struct {
	Progress model.Progress  `json:"progress"`
	Skills   []SkillProgress `json:"skills"`
	Timeline []TimelinePoint `json:"timeline"`
}

// GetDetailed returns per-skill standing plus a 30-day completion timeline.
func (s *ProgressService) GetDetailed(userID uint) (*DetailedProgress, error) {
	profile, err := s.Profiles.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}

	out := &DetailedProgress{Progress: profile.Progress}
	out.Progress.JobAccessibility = jobAccessibility(profile)

	perDay := make(map[string]int)
	if profile.HasRoadmap() {
		for _, step := range profile.Roadmap.Steps {
			out.Skills = append(out.Skills, SkillProgress{
				Skill:       step.Skill,
				Priority:    step.Priority,
				Status:      step.Status,
				CompletedAt: step.CompletedAt,
			})
			if step.CompletedAt != nil {
				perDay[step.CompletedAt.Format("2006-01-02")]++
			}
		}
	}

	today := time.Now()
	for i := 29; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		out.Timeline = append(out.Timeline, TimelinePoint{Date: day, Completed: perDay[day]})
	}

	return out, nil
}
