package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hotelier/internal/handlers"
	"hotelier/internal/middleware"
	"hotelier/internal/models"
	"hotelier/internal/repositories"
	"hotelier/internal/services"
	"hotelier/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":3000")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "hotelier.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// --- Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Room{}, &models.Booking{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set; booking events will not be published")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	roomRepo := repositories.NewGORMRoomRepository(db)
	bookingRepo := repositories.NewGORMBookingRepository(db)

	// --- Services ---
	tokenService := services.NewTokenService(jwtSecret)
	authService := services.NewAuthService(userRepo, tokenService)
	roomService := services.NewRoomService(roomRepo)
	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	bookingService := services.NewBookingService(bookingRepo, publisher)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	roomHandler := handlers.NewRoomHandler(roomService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Hotel booking API",
			"data":    fiber.Map{"time": time.Now().Format(time.RFC3339)},
		})
	})

	// --- API Routes ---
	api := app.Group("/api")

	// Public auth routes
	authHandler.RegisterRoutes(api)

	// Every other route requires a token
	protected := api.Group("", middleware.AuthRequired(tokenService))
	userHandler.RegisterRoutes(protected)
	roomHandler.RegisterRoutes(protected)
	bookingHandler.RegisterRoutes(protected)

	// --- Booking event consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for bookings...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received booking event %s: %s", msg.Type, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeBookingEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase opens a GORM connection for the configured driver.
// TranslateError turns driver-specific unique-violation errors into
// gorm.ErrDuplicatedKey, which the repositories rely on.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if driver == "postgres" {
		return gorm.Open(postgres.Open(dsn), cfg)
	}
	return gorm.Open(sqlite.Open(dsn), cfg)
}
