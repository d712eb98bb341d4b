// File: vetchat/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetchat/config"
	"vetchat/database"
	appointmentRepo "vetchat/database/repository/appointment"
	conversationRepo "vetchat/database/repository/conversation"
	"vetchat/handlers"
	"vetchat/middleware"
	"vetchat/routes"
	"vetchat/services/chat"
	ai "vetchat/services/intelligence"
	"vetchat/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitLockClient()
	utils.StartHealthMonitor(utils.GetLockClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	// Wide-open CORS so the widget can be embedded on any site.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	// Repositories.
	convRepo := conversationRepo.NewMongoConversationRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	if err := convRepo.EnsureIndexes(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure conversation indexes: %v", err)
	}

	// Services.
	gateway := ai.NewGeminiGateway(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		time.Duration(config.AppConfig.GeminiTimeoutSeconds)*time.Second,
	)
	locks := utils.NewRedisSessionLocker(
		utils.GetLockClient(),
		time.Duration(config.AppConfig.SessionLockTTLMs)*time.Millisecond,
		time.Duration(config.AppConfig.SessionLockWaitMs)*time.Millisecond,
	)
	chatService := &chat.DefaultChatService{
		ConvRepo:      convRepo,
		ApptRepo:      apptRepo,
		Gateway:       gateway,
		Locks:         locks,
		HistoryWindow: config.AppConfig.HistoryWindow,
	}

	chatHandler := handlers.NewChatHandler(chatService)
	appointmentHandler := handlers.NewAppointmentHandler(apptRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		PostMessageHandler:       chatHandler.PostMessageHandler,
		GetHistoryHandler:        chatHandler.GetHistoryHandler,
		CreateAppointmentHandler: appointmentHandler.CreateAppointmentHandler,
		ListAppointmentsHandler:  appointmentHandler.ListAppointmentsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
