package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"skillbridge_backend/internal/ai"
	"skillbridge_backend/internal/util"
)

type HealthController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	KeyPool *ai.KeyPool
}

func NewHealthController(db *gorm.DB, rdb *redis.Client, pool *ai.KeyPool) *HealthController {
	return &HealthController{DB: db, Redis: rdb, KeyPool: pool}
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports database, cache and AI key pool status.
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}
	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	cache := "up"
	if c.Redis == nil {
		cache = "disabled"
	} else if err := c.Redis.Ping(ctx.Request.Context()).Err(); err != nil {
		cache = "down"
	}

	aiStatus := "configured"
	if !c.KeyPool.HasKey() {
		aiStatus = "fallback-only"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
			"cache":    cache,
			"ai":       aiStatus,
		},
	})
}
