package routes

import (
	"course-hub/config"
	"course-hub/controllers"
	"course-hub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, gate *middlewares.AdminGate) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	SetupPublicRoutes(r)
	SetupAdminRoutes(r, gate)
}

func SetupPublicRoutes(r *gin.Engine) {
	r.GET("/courses", controllers.GetAllCourses)
	r.GET("/courses/featured", controllers.GetFeaturedCourses)
	r.GET("/courses/latest", controllers.GetLatestCourses)
	r.GET("/courses/:id", controllers.GetCourseByID)
	r.GET("/courses/:id/reviews", controllers.GetReviewsByCourse)
	r.POST("/courses/:id/reviews", controllers.CreateReview)
	r.POST("/courses/:id/enroll", controllers.EnrollInCourse)

	r.GET("/blog", controllers.GetPublishedBlogPosts)
	r.GET("/blog/:id", controllers.GetBlogPostByID)

	r.GET("/slides", controllers.GetActiveSlides)
	r.GET("/socials", controllers.GetSocialLinks)

	r.POST("/course-requests", controllers.CreateCourseRequest)
}

func SetupAdminRoutes(r *gin.Engine, gate *middlewares.AdminGate) {
	admin := r.Group("/admin")
	admin.POST("/login", controllers.AdminLogin)

	protected := admin.Group("", gate.Required())
	{
		protected.POST("/courses", controllers.AddCourse)
		protected.PUT("/courses/:id", controllers.UpdateCourse)
		protected.DELETE("/courses/:id", controllers.DeleteCourse)

		protected.GET("/blog", controllers.GetAllBlogPosts)
		protected.POST("/blog", controllers.AddBlogPost)
		protected.PUT("/blog/:id", controllers.UpdateBlogPost)
		protected.DELETE("/blog/:id", controllers.DeleteBlogPost)

		protected.GET("/slides", controllers.GetAllSlides)
		protected.POST("/slides", controllers.AddSlide)
		protected.PUT("/slides/:id", controllers.UpdateSlide)
		protected.DELETE("/slides/:id", controllers.DeleteSlide)

		protected.POST("/socials", controllers.AddSocialLink)
		protected.PUT("/socials/:id", controllers.UpdateSocialLink)
		protected.DELETE("/socials/:id", controllers.DeleteSocialLink)

		protected.GET("/reviews", controllers.GetAllReviews)
		protected.DELETE("/reviews/:id", controllers.DeleteReview)

		protected.GET("/course-requests", controllers.GetCourseRequests)

		protected.POST("/uploads", controllers.UploadImage)
	}
}
