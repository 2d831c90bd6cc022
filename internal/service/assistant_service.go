package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"skillbridge_backend/internal/ai"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/pkg/logger"
)

// historyLimit bounds how many turns (user and assistant messages counted
// separately) are kept and fed back into the prompt.
const historyLimit = 10

const historyTTL = 24 * time.Hour

type AssistantService struct {
	Profiles     *repository.ProfileRepository
	Orchestrator *ai.Orchestrator
	Redis        *redis.Client
}

func NewAssistantService(profiles *repository.ProfileRepository, orch *ai.Orchestrator, rdb *redis.Client) *AssistantService {
	return &AssistantService{Profiles: profiles, Orchestrator: orch, Redis: rdb}
}

func historyKey(userID uint) string {
	return fmt.Sprintf("assistant:history:%d", userID)
}

// history loads the most recent turns in chronological order. Redis being
// down or absent just means a memoryless conversation.
func (s *AssistantService) history(ctx context.Context, userID uint) []ai.ChatTurn {
	if s.Redis == nil {
		return nil
	}

	entries, err := s.Redis.LRange(ctx, historyKey(userID), 0, historyLimit-1).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("failed to load chat history", zap.Error(err))
		}
		return nil
	}

	// Entries are stored newest-first; replay them oldest-first.
	turns := make([]ai.ChatTurn, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		var turn ai.ChatTurn
		if err := json.Unmarshal([]byte(entries[i]), &turn); err != nil {
			continue
		}
		turns = append(turns, turn)
	}
	return turns
}

func (s *AssistantService) remember(ctx context.Context, userID uint, turns ...ai.ChatTurn) {
	if s.Redis == nil {
		return
	}

	key := historyKey(userID)
	for _, turn := range turns {
		payload, err := json.Marshal(turn)
		if err != nil {
			continue
		}
		if err := s.Redis.LPush(ctx, key, payload).Err(); err != nil {
			logger.Log.Warn("failed to store chat turn", zap.Error(err))
			return
		}
	}
	s.Redis.LTrim(ctx, key, 0, historyLimit-1)
	s.Redis.Expire(ctx, key, historyTTL)
}

// Chat answers a free-form question with full profile context: selected
// role, progress, gap count, completed and in-progress skills, and the
// recent conversation.
func (s *AssistantService) Chat(ctx context.Context, userID uint, message string) (string, error) {
	profile, err := s.Profiles.FindOrCreate(userID)
	if err != nil {
		return "", err
	}

	cc := ai.ChatContext{
		JobRole:  profile.SelectedJobRole.RoleName,
		Progress: profile.Progress.OverallCompletion,
		History:  s.history(ctx, userID),
	}
	if profile.Analysis != nil {
		cc.GapCount = len(profile.Analysis.Gaps)
	}

	var pc ai.ProgressContext
	if profile.HasRoadmap() {
		pc.RoadmapSteps = len(profile.Roadmap.Steps)
		for _, step := range profile.Roadmap.Steps {
			switch step.Status {
			case model.StepCompleted:
				pc.CompletedSkills = append(pc.CompletedSkills, step.Skill)
			case model.StepInProgress:
				pc.InProgressSkills = append(pc.InProgressSkills, step.Skill)
			}
		}
	}

	reply := s.Orchestrator.ChatEnhanced(ctx, message, cc, pc)

	s.remember(ctx, userID,
		ai.ChatTurn{Role: "user", Content: message},
		ai.ChatTurn{Role: "assistant", Content: reply},
	)

	return reply, nil
}
