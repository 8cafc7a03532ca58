package app

import (
	"mdsml_gateway/internal/middleware"
	"mdsml_gateway/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/signup", c.auth.Signup)
		public.POST("/auth/login", c.auth.Login)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware())
	{
		// 用户信息与学习进度（上游代理）
		authGroup.GET("/users/me", c.user.Me)
		authGroup.GET("/user/progress", c.user.Progress)

		// 课程与题目（上游代理）
		authGroup.GET("/courses", c.course.List)
		authGroup.GET("/courses/:id", c.course.Get)
		authGroup.POST("/courses/:id/enroll", c.course.Enroll)
		authGroup.GET("/problems/:id", c.problem.Get)
		authGroup.POST("/problems/:id/submit", c.problem.Submit)

		// 分层课程体系
		authGroup.GET("/curricula", c.curriculum.ListSubjects)
		authGroup.GET("/curricula/:subject", c.curriculum.Get)
		authGroup.POST("/curricula/:subject/tiers/:tierId/unlock-next", c.curriculum.UnlockNext)
		authGroup.POST("/curricula/:subject/tiers/:tierId/gatekeeper", c.curriculum.SubmitGatekeeper)
		authGroup.POST("/curricula/:subject/topics/:topicId/tabs/:tab/complete", c.topic.CompleteTab)

		// 话题页
		authGroup.GET("/topics/:topicId/content", c.topic.Content)
		authGroup.GET("/topics/:topicId/progress", c.topic.Progress)
		authGroup.DELETE("/topics/:topicId/session", c.topic.ResetSession)
		authGroup.GET("/topics/:topicId/notes", c.note.ListTopicNotes)
		authGroup.POST("/topics/:topicId/notes", c.note.AddTopicNote)
		authGroup.DELETE("/topics/:topicId/notes/:noteId", c.note.DeleteTopicNote)

		// 研究文献库
		authGroup.GET("/papers", c.research.List)
		authGroup.POST("/papers", c.research.Add)
		authGroup.GET("/papers/:id", c.research.Get)
		authGroup.POST("/papers/:id/pdf", c.research.UploadPDF)
		authGroup.GET("/papers/:id/notes", c.note.ListPaperNotes)
		authGroup.POST("/papers/:id/notes", c.note.AddPaperNote)
		authGroup.DELETE("/papers/:id/notes/:noteId", c.note.DeletePaperNote)
	}
}
