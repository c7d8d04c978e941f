package api

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"scholarstream/server/config"
	"scholarstream/server/infra/queue"
	"scholarstream/server/internal/api/rest/handlers"
	"scholarstream/server/internal/api/rest/middleware"
	"scholarstream/server/internal/clients/paygate"
	"scholarstream/server/internal/domain"
	"scholarstream/server/internal/helper"
	"scholarstream/server/internal/repository"
	"scholarstream/server/internal/services"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- Middleware ----------
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CorsOrigins,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- Postgres (users) ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("postgres connected")

	if err := db.AutoMigrate(&domain.User{}); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// ---------- Mongo (catalog, applications, reviews, payments) ----------
	// opened once for the process lifetime, never explicitly closed
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("mongo connection error: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("mongo ping error: %v", err)
	}
	mongoDB := client.Database(cfg.MongoDBName)
	log.Println("mongo connected")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic)
	gateway := paygate.New(cfg.StripeSecretKey)
	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	scholarshipRepo := repository.NewScholarshipRepository(mongoDB)
	applicationRepo := repository.NewApplicationRepository(mongoDB)
	reviewRepo := repository.NewReviewRepository(mongoDB)
	paymentRepo := repository.NewPaymentRepository(mongoDB)

	// ---------- Services ----------
	accessSvc := services.NewAccessService(userRepo)
	userSvc := services.NewUserService(userRepo)
	scholarshipSvc := services.NewScholarshipService(scholarshipRepo)
	applicationSvc := services.NewApplicationService(applicationRepo, kafkaProducer)
	reviewSvc := services.NewReviewService(reviewRepo)
	paymentSvc := services.NewPaymentService(paymentRepo, kafkaProducer)
	analyticsSvc := services.NewAnalyticsService(userRepo, scholarshipRepo, applicationRepo, paymentRepo)

	// ---------- Handlers ----------
	guards := middleware.NewGuards(authHelper, accessSvc)

	handlers.NewUserHandler(userSvc, authHelper).SetupRoutes(app, guards)
	handlers.NewScholarshipHandler(scholarshipSvc).SetupRoutes(app, guards)
	handlers.NewApplicationHandler(applicationSvc).SetupRoutes(app, guards)
	handlers.NewReviewHandler(reviewSvc).SetupRoutes(app, guards)
	handlers.NewPaymentHandler(paymentSvc, gateway).SetupRoutes(app, guards)
	handlers.NewAnalyticsHandler(analyticsSvc).SetupRoutes(app, guards)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ScholarStream server")
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}
