package app

import (
	"mathlearn_backend/docs"
	"mathlearn_backend/internal/middleware"
	"mathlearn_backend/internal/model"
	"mathlearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerTeacherRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/me", c.auth.Me)
	rg.PUT("/profile", c.user.UpdateProfile)
	rg.PUT("/profile/password", c.user.ChangePassword)

	// 题库主题和学习资料
	rg.GET("/topics", c.question.ListTopics)
	rg.GET("/categories", c.content.ListCategories)
	rg.GET("/materials", c.content.ListMaterials)
	rg.GET("/materials/:id", c.content.GetMaterial)

	// 测验会话
	rg.POST("/tests/start", c.test.StartTest)
	rg.POST("/tests/start-mixed", c.test.StartMixedTest)
	rg.GET("/tests/current", c.test.CurrentQuestion)
	rg.DELETE("/tests/current", c.test.Discard)
	rg.POST("/tests/answer", c.test.Answer)
	rg.POST("/tests/skip", c.test.Skip)
	rg.GET("/tests/result", c.test.Result)

	// 学习进度
	rg.GET("/progress", c.progress.GetProgress)
	rg.PUT("/progress", c.progress.UpdateProgress)

	// 个人统计
	rg.GET("/analytics/weak-topics", c.analytics.WeakTopics)
	rg.GET("/analytics/success-rates", c.analytics.SuccessRates)
	rg.GET("/analytics/history", c.analytics.History)

	// 报表导出
	rg.GET("/reports/test", c.report.ExportTestReport)
	rg.GET("/reports/progress", c.report.ExportProgressReport)
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.Teacher))
	{
		teacher.GET("/questions", c.question.ListQuestions)
		teacher.POST("/questions", c.question.CreateQuestion)
		teacher.GET("/questions/:id", c.question.GetQuestion)
		teacher.PUT("/questions/:id", c.question.UpdateQuestion)
		teacher.DELETE("/questions/:id", c.question.DeleteQuestion)

		teacher.POST("/materials", c.content.CreateMaterial)
		teacher.PUT("/materials/:id", c.content.UpdateMaterial)
		teacher.DELETE("/materials/:id", c.content.DeleteMaterial)
		teacher.POST("/materials/:id/attachment", c.content.UploadAttachment)
		teacher.POST("/categories", c.content.CreateCategory)

		teacher.GET("/students/:id/stats", c.analytics.StudentStats)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.PUT("/users/:id", c.user.UpdateUser)
		admin.PUT("/users/:id/disable", c.user.DisableUser)
		admin.DELETE("/users/:id", c.user.DeleteUser)

		admin.GET("/logs", c.logs.ListLogs)
	}
}
