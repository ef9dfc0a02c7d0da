package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"szepseg-katalogus/internal/config"
	"szepseg-katalogus/internal/handler"
	"szepseg-katalogus/internal/middleware"
	"szepseg-katalogus/internal/repository"
	"szepseg-katalogus/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	mongoDB, err := config.NewMongoDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (media operations will not work)", err)
	}

	repos := repository.NewRepositories(db, mongoDB)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	v1.Post("/providers", h.Provider.Register)
	v1.Get("/public/providers", h.Provider.ListApproved)

	auth := v1.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Get("/admins/me", h.Auth.Me)

	providers := protected.Group("/providers")
	providers.Get("/", h.Provider.List)
	providers.Get("/:providerId", h.Provider.Get)
	providers.Patch("/:providerId", h.Provider.Update)
	providers.Delete("/:providerId", h.Provider.Delete)
	providers.Post("/:providerId/approve", h.Provider.Approve)

	providers.Post("/:providerId/images", h.Media.AttachImage)
	providers.Put("/:providerId/images", h.Media.SetMainImage)
	providers.Delete("/:providerId/images", h.Media.RemoveImage)
	providers.Post("/:providerId/videos", h.Media.AttachVideo)
	providers.Put("/:providerId/videos", h.Media.SetMainVideo)
	providers.Delete("/:providerId/videos", h.Media.RemoveVideo)
	providers.Delete("/:providerId/media", h.Media.Purge)
	providers.Post("/:providerId/media/upload", h.Media.Upload)
	providers.Get("/:providerId/export", h.Export.Export)

	protected.Get("/media/download", h.Media.Download)
}
