package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kemumsa/backend/internal/app/controllers"
	"github.com/kemumsa/backend/internal/middleware"
	"github.com/kemumsa/backend/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	memberController *controllers.MemberController,
	eventController *controllers.EventController,
	executiveController *controllers.ExecutiveController,
	classLeaderController *controllers.ClassLeaderController,
	resourceController *controllers.ResourceController,
	messageController *controllers.MessageController,
	carouselController *controllers.CarouselController,
	adminController *controllers.AdminController,
	statisticsController *controllers.StatisticsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---

	// Member registration, login and the public directory
	members := api.Group("/members")
	{
		members.POST("/register", memberController.Register)
		members.POST("/login", memberController.Login)
		members.GET("", memberController.GetDirectory)
		members.GET("/:id", memberController.GetMemberByID)
	}

	// Event listings (public read access)
	events := api.Group("/events")
	{
		events.GET("", eventController.GetEvents)
		events.GET("/:id", eventController.GetEventByID)
	}

	// Executive committee listings
	executives := api.Group("/executives")
	{
		executives.GET("", executiveController.GetExecutives)
		executives.GET("/:id", executiveController.GetExecutiveByID)
	}

	// Class leader listings and per-year stats
	classLeaders := api.Group("/class-leaders")
	{
		classLeaders.GET("", classLeaderController.GetClassLeaders)
		classLeaders.GET("/stats", classLeaderController.GetStats)
		classLeaders.GET("/:id", classLeaderController.GetClassLeaderByID)
	}

	// Study resource listings
	resources := api.Group("/resources")
	{
		resources.GET("", resourceController.GetResources)
		resources.GET("/:id", resourceController.GetResourceByID)
	}

	// Homepage carousel listings
	carousel := api.Group("/carousel")
	{
		carousel.GET("", carouselController.GetImages)
		carousel.GET("/:id", carouselController.GetImageByID)
	}

	// Contact form submission is open to visitors
	api.POST("/messages", messageController.SubmitMessage)

	// Contact details shown on the public site
	api.GET("/communication", adminController.GetCommunication)

	// Landing page counters
	api.GET("/statistics", statisticsController.GetStatistics)

	// Admin login stays outside the authenticated group
	api.POST("/admin/login", adminController.Login)

	// --- Authenticated member routes ---
	memberAuth := api.Group("/members")
	memberAuth.Use(authMiddleware.JWTAuth())
	{
		memberAuth.PUT("/:id", memberController.UpdateMember)
		memberAuth.PATCH("/:id/status", memberController.UpdateStatus)
		memberAuth.POST("/:id/profile-picture", memberController.UploadProfilePicture)
		memberAuth.POST("/verify-password", memberController.VerifyPassword)
	}

	// --- Admin routes ---
	adminOnly := api.Group("")
	adminOnly.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(auth.RoleAdmin))
	{
		// Content management for the public sections
		adminOnly.POST("/events", eventController.CreateEvent)
		adminOnly.PUT("/events/:id", eventController.UpdateEvent)
		adminOnly.POST("/events/:id/media", eventController.AddMedia)
		adminOnly.DELETE("/events/:id", eventController.DeleteEvent)

		adminOnly.POST("/executives", executiveController.CreateExecutive)
		adminOnly.PUT("/executives/:id", executiveController.UpdateExecutive)
		adminOnly.DELETE("/executives/:id", executiveController.DeleteExecutive)

		adminOnly.POST("/class-leaders", classLeaderController.CreateClassLeader)
		adminOnly.PUT("/class-leaders/:id", classLeaderController.UpdateClassLeader)
		adminOnly.DELETE("/class-leaders/:id", classLeaderController.DeleteClassLeader)

		adminOnly.POST("/resources", resourceController.CreateResource)
		adminOnly.PUT("/resources/:id", resourceController.UpdateResource)
		adminOnly.PATCH("/resources/:id/toggle", resourceController.ToggleResource)
		adminOnly.DELETE("/resources/:id", resourceController.DeleteResource)

		adminOnly.POST("/carousel", carouselController.CreateImage)
		adminOnly.PUT("/carousel/:id", carouselController.UpdateImage)
		adminOnly.PATCH("/carousel/:id/toggle", carouselController.ToggleImage)
		adminOnly.DELETE("/carousel/:id", carouselController.DeleteImage)

		// Admin panel
		admin := adminOnly.Group("/admin")
		{
			admin.GET("/profile", adminController.GetProfile)
			admin.PUT("/profile", adminController.UpdateProfile)
			admin.POST("/verify-password", adminController.VerifyPassword)
			admin.PUT("/communication", adminController.UpdateCommunication)

			// Member moderation
			admin.GET("/members", adminController.ListMembers)
			admin.PATCH("/members/:id/approve", adminController.ApproveMember)
			admin.PUT("/members/:id", adminController.UpdateMember)
			admin.DELETE("/members/:id", adminController.DeleteMember)

			// Contact message inbox
			admin.GET("/messages", messageController.ListMessages)
			admin.GET("/messages/stats", messageController.GetStats)
			admin.GET("/messages/:id", messageController.GetMessageByID)
			admin.PATCH("/messages/:id/open", messageController.OpenMessage)
			admin.PATCH("/messages/:id/mark-viewed", messageController.MarkViewed)
			admin.POST("/messages/:id/reply", messageController.ReplyToMessage)
			admin.DELETE("/messages/:id", messageController.DeleteMessage)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "status": "ok"})
	})
}
