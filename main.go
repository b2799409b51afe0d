package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"storefront/internal/events"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/cache"
	"storefront/pkg/gateway"
	"storefront/pkg/rabbitmq"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "storefront.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("JWT_SECRET", "dev_jwt_secret")
	viper.SetDefault("GATEWAY_KEY_ID", "")
	viper.SetDefault("GATEWAY_KEY_SECRET", "")
	viper.SetDefault("GATEWAY_URL", "https://api.razorpay.com")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Address{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Shipment{},
		&models.Coupon{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional; the core works without a broker) ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set; event publishing disabled")
	}

	// --- Catalog cache ---
	cacheManager := cache.NewManager()

	// --- Payment gateway ---
	gatewayKeyID := viper.GetString("GATEWAY_KEY_ID")
	var paymentGateway gateway.Gateway
	clientKeyID := gatewayKeyID
	if gateway.IsMockKey(gatewayKeyID) {
		log.Println("Payment gateway running in MOCK mode (no real gateway calls)")
		paymentGateway = gateway.Mock{}
		clientKeyID = "mock_key"
	} else {
		paymentGateway = gateway.NewClient(gatewayKeyID, viper.GetString("GATEWAY_KEY_SECRET"), viper.GetString("GATEWAY_URL"))
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	shipmentRepo := repositories.NewGORMShipmentRepository(db)
	couponRepo := repositories.NewGORMCouponRepository(db)
	addressRepo := repositories.NewGORMAddressRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))
	productService := services.NewProductService(productRepo, cacheManager)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(db, mqClient)
	paymentService := services.NewPaymentService(db, paymentGateway, clientKeyID, mqClient)
	projector := events.NewOrderStatusProjector(orderRepo, mqClient)
	shippingService := services.NewShippingService(shipmentRepo, projector)
	couponService := services.NewCouponService(couponRepo)
	addressService := services.NewAddressService(addressRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	shippingHandler := handlers.NewShippingHandler(shippingService)
	couponHandler := handlers.NewCouponHandler(couponService)
	addressHandler := handlers.NewAddressHandler(addressService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	// Public routes
	authHandler.RegisterRoutes(apiV1)
	productHandler.RegisterPublicRoutes(apiV1)

	// Authenticated routes
	authed := apiV1.Group("", middleware.AuthRequired(authService))
	cartHandler.RegisterRoutes(authed)
	orderHandler.RegisterRoutes(authed)
	paymentHandler.RegisterRoutes(authed)
	addressHandler.RegisterRoutes(authed)

	// Admin routes
	admin := apiV1.Group("", middleware.AuthRequired(authService), middleware.AdminRequired())
	productHandler.RegisterAdminRoutes(admin)
	shippingHandler.RegisterRoutes(admin)
	couponHandler.RegisterRoutes(admin)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"cache":  cacheManager.Stats(),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// Logs every fulfillment event flowing through the broker; downstream
	// consumers (email, analytics) would hang off the same queue.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for fulfillment events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received fulfillment event %s: %s", msg.RoutingKey, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeFulfillmentEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
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
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
}
