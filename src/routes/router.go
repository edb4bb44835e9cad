package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/formpilot/formpilot/docs"
	"github.com/formpilot/formpilot/src/handlers"
	"github.com/formpilot/formpilot/src/middleware"
	"github.com/formpilot/formpilot/src/repositories"
	"github.com/formpilot/formpilot/src/services"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos_instance := repositories.New()
	services_instance := services.New(repos_instance)
	handlers_instance := handlers.New(services_instance)

	// setup
	r.POST("/register", handlers_instance.User.Register)
	r.POST("/login", handlers_instance.User.Login)
	r.POST("/logout", handlers_instance.User.Logout)
	r.POST("/seed", handlers_instance.Seed.Seed)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public endpoints are CORS-open so embedded forms can load and submit
	// from any origin.
	public := r.Group("/public")
	public.Use(cors.Default())
	{
		public.GET("/forms/:id", handlers_instance.Submission.GetPublicForm)
		public.POST("/forms/:id/submissions", handlers_instance.Submission.CreateSubmission)
	}

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/forms/:id/feed", handlers_instance.Feed.WatchSubmissions)

		forms := auth.Group("/forms")
		{
			forms.GET("", handlers_instance.Form.GetMyForms)
			forms.POST("", handlers_instance.Form.CreateForm)
			forms.GET("/:id", handlers_instance.Form.GetForm)
			forms.PUT("/:id", handlers_instance.Form.UpdateForm)
			forms.PATCH("/:id/active", handlers_instance.Form.SetActive)
			forms.DELETE("/:id", handlers_instance.Form.DeleteForm)
			forms.GET("/:id/embed", handlers_instance.Form.EmbedCode)
			forms.GET("/:id/submissions", handlers_instance.Submission.ListSubmissions)
			forms.GET("/:id/analytics", handlers_instance.Analytics.GetFormAnalytics)
			forms.POST("/:id/export", handlers_instance.Export.ExportSubmissions)
		}
	}
}
