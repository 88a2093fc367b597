package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/studentregistry/internal/app/controllers"
	"github.com/yigit/studentregistry/internal/pkg/filestorage"
	"github.com/yigit/studentregistry/internal/pkg/metrics"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, studentController *controllers.StudentController) {
	students := router.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/:id", studentController.GetStudent)
	}

	router.GET("/health", studentController.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}

// SetupStaticFiles serves stored documents from dir, so the pdf_file path
// recorded on a row is also its download URL whatever dir is.
func SetupStaticFiles(router *gin.Engine, dir string) {
	router.Static("/"+filestorage.PathPrefix, dir)
}
