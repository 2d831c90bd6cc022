package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"skillbridge_backend/internal/ai"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
	"skillbridge_backend/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

// newRoadmapRouter wires the step-update route behind a stub auth layer
// that always authenticates user 1.
func newRoadmapRouter(t *testing.T, roadmap *model.Roadmap) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.CareerProfile{}))

	repo := repository.NewProfileRepository(db)
	profile, err := repo.FindOrCreate(1)
	require.NoError(t, err)
	profile.Roadmap = roadmap
	require.NoError(t, repo.Save(profile))

	orch := ai.NewOrchestrator(ai.NewKeyPool(nil), nil, 3, zap.NewNop())
	ctrl := NewRoadmapController(service.NewRoadmapService(repo, orch))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: 1})
	})
	router.PUT("/roadmap/step/:stepIndex", ctrl.UpdateStep)
	return router
}

func putStepStatus(router *gin.Engine, stepIndex, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/roadmap/step/"+stepIndex, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUpdateStepQuizGateReturnsBadRequest(t *testing.T) {
	roadmap := &model.Roadmap{
		Steps: []model.RoadmapStep{
			{
				Skill:    "Docker",
				Priority: model.PriorityCritical,
				Status:   model.StepNotStarted,
				Quiz: &model.Quiz{
					Questions: []model.QuizQuestion{{
						Question:      "Q1",
						Options:       model.QuizOptions{A: "a", B: "b", C: "c", D: "d"},
						CorrectAnswer: "A",
					}},
				},
			},
		},
	}
	router := newRoadmapRouter(t, roadmap)

	rec := putStepStatus(router, "0", `{"status":"completed"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requiresQuiz":true`)
}

func TestUpdateStepOutOfRangeIndexReturnsBadRequest(t *testing.T) {
	roadmap := &model.Roadmap{
		Steps: []model.RoadmapStep{
			{Skill: "Docker", Priority: model.PriorityCritical, Status: model.StepNotStarted},
		},
	}
	router := newRoadmapRouter(t, roadmap)

	rec := putStepStatus(router, "99", `{"status":"completed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = putStepStatus(router, "-1", `{"status":"completed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
