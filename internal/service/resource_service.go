package service

import (
	"context"

	"skillbridge_backend/internal/ai"
	"skillbridge_backend/internal/model"
)

type ResourceService struct {
	Orchestrator *ai.Orchestrator
}

func NewResourceService(orch *ai.Orchestrator) *ResourceService {
	return &ResourceService{Orchestrator: orch}
}

// ForSkill returns curated learning resources. Always succeeds: failures
// inside the orchestrator degrade to the canned set.
func (s *ResourceService) ForSkill(ctx context.Context, skill, level string) []model.LearningResource {
	if level == "" {
		level = string(model.LevelBeginner)
	}
	return s.Orchestrator.LearningResources(ctx, skill, level)
}
