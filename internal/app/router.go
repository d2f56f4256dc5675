package app

import (
	"college_portal_backend/docs"
	"college_portal_backend/internal/config"
	"college_portal_backend/internal/middleware"
	"college_portal_backend/internal/model"

	"college_portal_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerTeacherRoutes(authGroup, c)
		a.registerStudentRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.RoleTeacher))
	{
		teacher.GET("/branches", c.dashboard.TeacherBranches)
		teacher.POST("/branches/:code/unlock", c.auth.UnlockBranch)
	}

	// everything below needs the branch password entered first
	branch := teacher.Group("/branches/:code")
	branch.Use(middleware.BranchAccessMiddleware())
	{
		branch.POST("/students/import", c.roster.ImportRoster)
		branch.POST("/students", c.roster.AddStudent)
		branch.GET("/students", c.roster.ListRoster)
		branch.DELETE("/students/:usn", c.roster.DeleteStudent)

		branch.GET("/semesters/:sem/marks", c.marks.Grid)
		branch.POST("/semesters/:sem/marks", c.marks.Save)
		branch.DELETE("/semesters/:sem/marks/:usn", c.marks.Reset)

		branch.GET("/semesters/:sem/subjects", c.subject.GetSubjects)
		branch.PUT("/semesters/:sem/subjects", c.subject.UpdateSubjects)

		branch.POST("/notes", c.notes.Upload)
		branch.GET("/notes", c.notes.List)
		branch.DELETE("/notes/:id", c.notes.Delete)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	student := rg.Group("/student")
	student.Use(middleware.RoleMiddleware(model.RoleStudent))
	{
		student.GET("/dashboard", c.dashboard.StudentDashboard)
		student.GET("/marks", c.report.StudentMarks)
		student.GET("/marksheet", c.report.StudentMarksheet)
		student.GET("/notes", c.notes.StudentNotes)
	}

	// teachers may re-download their own uploads through the same endpoint
	rg.GET("/student/notes/:id/download",
		middleware.RoleMiddleware(model.RoleStudent, model.RoleTeacher),
		c.notes.Download)
}
