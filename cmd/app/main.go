package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"archtrip/cmd/fx/db_fx"
	"archtrip/cmd/fx/history_fx"
	"archtrip/cmd/fx/planner_fx"
	"archtrip/cmd/fx/session_fx"
	"archtrip/internal/api/controllers"
	"archtrip/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		history_fx.Module,
		planner_fx.Module,
		session_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	historyController *controllers.HistoryController,
	sessionController *controllers.SessionController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plannerController, historyController, sessionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	historyController *controllers.HistoryController,
	sessionController *controllers.SessionController) {

	tripsGroup := r.Group("/trips")
	tripsGroup.POST("/generate", plannerController.GenerateTripHandler)

	historyGroup := r.Group("/history")
	historyGroup.GET("", historyController.ListHistoryHandler)
	historyGroup.DELETE("", historyController.ClearHistoryHandler)

	sessionsGroup := r.Group("/sessions")
	sessionsGroup.POST("", sessionController.CreateSessionHandler)
	sessionsGroup.GET("/:sessionId", sessionController.GetSessionHandler)
	sessionsGroup.POST("/:sessionId/select", sessionController.SelectActivityHandler)
	sessionsGroup.POST("/:sessionId/clear", sessionController.ClearSelectionHandler)
	sessionsGroup.POST("/:sessionId/days/:dayNumber/toggle", sessionController.ToggleDayHandler)
	sessionsGroup.GET("/:sessionId/share-text", sessionController.ShareTextHandler)
}
