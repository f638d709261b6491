package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dtalero78/siigo-retiros/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	api := router.Group("/api")
	{
		api.GET("/questions", c.question.GetQuestions)
		api.GET("/questions/form", c.question.GetForm)

		api.POST("/responses", c.response.Submit)
		api.GET("/responses", c.response.List)
		api.GET("/responses/stats", c.response.Stats)
		api.GET("/responses/export", c.response.ExportCSV)
		api.GET("/responses/:id", c.response.Get)
		api.DELETE("/responses/:id", c.response.Delete)
		api.POST("/responses/:id/analysis", c.response.Analyze)

		api.POST("/users", c.user.Create)
		api.POST("/users/import", c.user.Import)
		api.GET("/users", c.user.List)
		api.GET("/users/pending", c.user.Pending)
		api.GET("/users/stats", c.user.Stats)
		api.GET("/users/:id", c.user.Get)
		api.PUT("/users/:id", c.user.Update)
		api.DELETE("/users/:id", c.user.Delete)

		api.POST("/whatsapp/send/:id", c.whatsapp.Send)
		api.POST("/whatsapp/send-bulk", c.whatsapp.SendBulk)
		api.POST("/whatsapp/send-pending", c.whatsapp.SendPending)

		api.POST("/admin/backup", c.admin.Backup)
	}
}
