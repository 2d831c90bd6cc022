package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"skillbridge_backend/internal/ai"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/pkg/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.JobRole{}, &model.CareerProfile{}))
	return db
}

// offlineOrchestrator has no API keys, so every task resolves through its
// deterministic fallback.
func offlineOrchestrator() *ai.Orchestrator {
	return ai.NewOrchestrator(ai.NewKeyPool(nil), nil, 3, zap.NewNop())
}

func profileRepo(db *gorm.DB) *repository.ProfileRepository {
	return repository.NewProfileRepository(db)
}

// seedProfile stores a profile with the given roadmap for user 1.
func seedProfile(t *testing.T, repo *repository.ProfileRepository, roadmap *model.Roadmap) *model.CareerProfile {
	t.Helper()

	profile, err := repo.FindOrCreate(1)
	require.NoError(t, err)
	profile.Roadmap = roadmap
	if roadmap != nil {
		profile.Progress.TotalSkills = len(roadmap.Steps)
	}
	require.NoError(t, repo.Save(profile))
	return profile
}

func quizOf(n int) *model.Quiz {
	quiz := &model.Quiz{}
	for i := 0; i < n; i++ {
		quiz.Questions = append(quiz.Questions, model.QuizQuestion{
			Question:      fmt.Sprintf("Q%d", i+1),
			Options:       model.QuizOptions{A: "a", B: "b", C: "c", D: "d"},
			CorrectAnswer: "A",
			Explanation:   "because",
		})
	}
	return quiz
}
