package routes

import (
	"net/http"

	"github.com/DesaiVishal-16/Longevix/config"
	"github.com/DesaiVishal-16/Longevix/controllers"
	"github.com/DesaiVishal-16/Longevix/middlewares"
	"github.com/DesaiVishal-16/Longevix/models"
	"github.com/DesaiVishal-16/Longevix/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRouter(log zerolog.Logger) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestID(log))

	hub := services.NewRealtimeHub()

	authSvc := services.NewAuthService(config.DB)
	userSvc := services.NewUserService(config.DB, log)
	mealSvc := services.NewMealService(config.DB)
	dashSvc := services.NewDashboardService(config.DB)
	aiSvc := services.NewAIService(config.Env.AIServiceURL, config.Env.AITimeout, log)

	authCtl := controllers.NewAuthController(authSvc, userSvc)
	mealCtl := controllers.NewMealController(mealSvc, dashSvc, hub)
	aiCtl := controllers.NewAIController(aiSvc)
	dashCtl := controllers.NewDashboardController(dashSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected profile routes
	profile := r.Group("/auth")
	profile.Use(middlewares.AuthMiddleware())
	{
		profile.GET("/profile", authCtl.GetProfile)
		profile.PUT("/profile", authCtl.UpdateProfile)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", mealCtl.LogMeal)
		meals.GET("", mealCtl.ListMeals)
		meals.GET("/:mealId", mealCtl.GetMeal)
		meals.POST("/food", mealCtl.AddFood)
		meals.DELETE("/:mealId/food/:foodId", mealCtl.RemoveFood)
	}

	ai := r.Group("/ai")
	ai.Use(middlewares.AuthMiddleware())
	{
		ai.POST("/chat", middlewares.RequireRoles(models.RoleProUser, models.RoleAdmin), aiCtl.Chat)
		ai.POST("/generate-nutrients", aiCtl.GenerateNutrients)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("/summary", dashCtl.Summary)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("", rtCtl.EventsWS)
	}

	return r
}
