package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"skillbridge_backend/docs"
	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/middleware"
	"skillbridge_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		public.GET("/jobs", c.job.List)
		public.GET("/jobs/:id", c.job.Get)
		public.POST("/jobs", c.job.Create)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.resume.Profile)

		authGroup.POST("/resume/upload", c.resume.Upload)
		authGroup.PUT("/resume/text", c.resume.SetText)
		authGroup.GET("/resume", c.resume.Get)

		authGroup.POST("/analysis", c.analysis.Analyze)
		authGroup.GET("/analysis", c.analysis.Get)

		authGroup.POST("/roadmap", c.roadmap.Generate)
		authGroup.GET("/roadmap", c.roadmap.Get)
		authGroup.PUT("/roadmap/step/:stepIndex", c.roadmap.UpdateStep)
		authGroup.GET("/roadmap/step/:stepIndex/youtube", c.roadmap.Playlists)
		authGroup.POST("/roadmap/step/:stepIndex/quiz", c.roadmap.GenerateQuiz)
		authGroup.POST("/roadmap/step/:stepIndex/quiz/submit", c.roadmap.SubmitQuiz)

		authGroup.GET("/resources/:skill", c.resource.ForSkill)

		authGroup.POST("/assistant/chat", c.assistant.Chat)

		authGroup.GET("/progress", c.progress.Get)
		authGroup.GET("/progress/detailed", c.progress.GetDetailed)
	}
}
