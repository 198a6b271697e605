package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/VinaySai005/SkillSwap-dt/internal/api"
	"github.com/VinaySai005/SkillSwap-dt/internal/events"
	"github.com/VinaySai005/SkillSwap-dt/internal/match"
	"github.com/VinaySai005/SkillSwap-dt/internal/s3"
	"github.com/VinaySai005/SkillSwap-dt/internal/service"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
	"github.com/VinaySai005/SkillSwap-dt/internal/tracing"
)

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		fmt.Println("No .env.dev file found, reading from environment variables provided by Docker")
	}

	api.SetupGlobalHandler("skillswap")

	shutdownTracer, err := tracing.InitTracerProvider("skillswap")
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	st := store.New()

	var eventPublisher events.EventPublisher
	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		eventPublisher, err = events.NewNatsPublisher(natsURL)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		log.Println("Successfully connected to NATS.")
	} else {
		eventPublisher = events.NewNoopPublisher()
		log.Println("NATS_URL not set, events will be logged and dropped.")
	}

	authService := service.NewAuthService(st)
	userService := service.NewUserService(st)
	skillService := service.NewSkillService(st)
	sessionService := service.NewSessionService(st, eventPublisher)
	messageService := service.NewMessageService(st, eventPublisher)
	reviewService := service.NewReviewService(st)
	matchEngine := match.NewEngine(st)

	var filePresigner *s3.FilePresigner
	if os.Getenv("S3_BUCKET_NAME") != "" {
		filePresigner, err = s3.NewFilePresigner()
		if err != nil {
			log.Fatalf("Failed to initialize S3 presigner: %v", err)
		}
		log.Println("Successfully initialized S3 presigner.")
	}

	authHandler := api.NewAuthHandler(authService)
	userHandler := api.NewUserHandler(userService, filePresigner)
	skillHandler := api.NewSkillHandler(skillService)
	sessionHandler := api.NewSessionHandler(sessionService)
	messageHandler := api.NewMessageHandler(messageService)
	reviewHandler := api.NewReviewHandler(reviewService)
	matchHandler := api.NewMatchHandler(matchEngine)

	app := fiber.New()
	app.Use(otelfiber.Middleware())
	app.Use(api.PrometheusMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "skillswap"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.Refresh)
	authRoutes.Post("/logout", authHandler.Logout)

	v1.Get("/users/:id/skills", skillHandler.ListSkillsByUser)
	v1.Get("/users/:id/reviews", reviewHandler.ListReviewsByUser)

	userRoutes := v1.Group("/users")
	userRoutes.Use(api.AuthMiddleware())
	userRoutes.Get("/me", authHandler.GetUserProfile)
	userRoutes.Put("/me", userHandler.UpdateUserProfile)
	if filePresigner != nil {
		userRoutes.Post("/me/avatar/upload-url", userHandler.GetAvatarUploadURL)
	}
	userRoutes.Get("/:id", userHandler.GetUserProfileByID)

	v1.Get("/skills", skillHandler.ListAllSkills)
	v1.Get("/skills/:id", skillHandler.GetSkillByID)

	skillRoutes := v1.Group("/skills")
	skillRoutes.Use(api.AuthMiddleware())
	skillRoutes.Post("/", skillHandler.CreateSkill)
	skillRoutes.Put("/:id", skillHandler.UpdateSkill)
	skillRoutes.Delete("/:id", skillHandler.DeleteSkill)

	sessionRoutes := v1.Group("/sessions")
	sessionRoutes.Use(api.AuthMiddleware())
	sessionRoutes.Get("/", sessionHandler.ListMySessions)
	sessionRoutes.Post("/", sessionHandler.BookSession)
	sessionRoutes.Get("/:id", sessionHandler.GetSessionByID)
	sessionRoutes.Put("/:id", sessionHandler.UpdateSession)

	messageRoutes := v1.Group("/messages")
	messageRoutes.Use(api.AuthMiddleware())
	messageRoutes.Post("/", messageHandler.SendMessage)
	messageRoutes.Get("/:userId", messageHandler.GetThread)
	messageRoutes.Post("/:userId/read", messageHandler.MarkThreadRead)

	reviewRoutes := v1.Group("/reviews")
	reviewRoutes.Use(api.AuthMiddleware())
	reviewRoutes.Post("/", reviewHandler.CreateReview)

	v1.Get("/matches", api.AuthMiddleware(), matchHandler.GetMatches)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8001"
	}

	log.Printf("Listening skillswap on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
