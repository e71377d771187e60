// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"warmshare/internal/cache"
	"warmshare/internal/config"
	"warmshare/internal/database"
	"warmshare/internal/middleware"
	"warmshare/internal/models"
	"warmshare/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config       *config.Config
	mongoClient  *mongo.Client
	db           *mongo.Database
	redis        *redis.Client
	userRepo     repository.UserRepository
	clotheRepo   repository.ClotheRepository
	donationRepo repository.DonationRepository
	commentRepo  repository.CommentRepository
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize database
	client, db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Initialize Redis (rate limiter backend, optional)
	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return &Server{
		config:       cfg,
		mongoClient:  client,
		db:           db,
		redis:        redisClient,
		userRepo:     repository.NewUserRepository(db),
		clotheRepo:   repository.NewClotheRepository(db),
		donationRepo: repository.NewDonationRepository(db),
		commentRepo:  repository.NewCommentRepository(db),
	}, nil
}

// BuildApp creates the Fiber application with middleware and routes configured.
func (s *Server) BuildApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Warmshare API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return c.Status(fiberErr.Code).JSON(fiber.Map{
					"success": false,
					"message": fiberErr.Message,
				})
			}
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Request ID for tracing
	app.Use(requestid.New())

	// Recover from handler panics so one bad request cannot kill the process
	app.Use(recover.New())

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware
	app.Use(middleware.StructuredLogger())

	// Distributed tracing
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Prometheus HTTP metrics
	prom := fiberprometheus.New("warmshare-api")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Too many requests, please try again later.",
			})
		},
	}))

	// CORS middleware
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Liveness check
	app.Get("/", s.Liveness)

	api := app.Group("/api/v1")

	// Dependency health check
	api.Get("/health", s.HealthCheck)

	// Auth routes
	api.Post("/register", middleware.RateLimit(s.redis, 3, 10*time.Minute, "register"), s.Register)
	api.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)
	api.Get("/me", s.AuthRequired(), s.GetMyProfile)

	// User directory routes
	api.Get("/users/:id", s.GetUser)
	api.Get("/volunteers", s.ListVolunteers)
	api.Post("/volunteers/:id", s.RegisterVolunteer)
	api.Get("/donors", s.ListDonors)
	api.Post("/testimonials/:id", s.AddTestimonial)

	// Clothing catalog routes
	api.Post("/clothes", s.CreateClothe)
	api.Get("/clothes", s.ListClothes)
	api.Get("/clothes/:id", s.GetClothe)
	api.Patch("/clothes/:id", s.UpdateClothe)
	api.Delete("/clothes/:id", s.DeleteClothe)

	// Donation ledger routes
	api.Post("/donations", s.RecordDonation)
	api.Get("/donations", s.ListDonations)

	// Comment board routes
	api.Post("/comments/:id", s.PostComment)
	api.Get("/comments", s.ListComments)
}

// Liveness handles the root liveness check
func (s *Server) Liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Server is running smoothly",
		"timestamp": time.Now(),
	})
}

// HealthCheck reports the health of the server's dependencies
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := s.mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Warmshare",
		"status":  dbStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware. It validates the bearer
// token and stores the caller's user id and email in the request context.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		// Parse and validate token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})

		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		userID, ok := claims["id"].(string)
		if !ok || userID == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid user ID in token"))
		}

		c.Locals("userID", userID)
		if email, ok := claims["email"].(string); ok {
			c.Locals("email", email)
		}

		return c.Next()
	}
}

// generateToken creates a signed JWT carrying the user's email and id.
func (s *Server) generateToken(user *models.User) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"email": user.Email,
		"id":    user.ID.Hex(),
		"exp":   now.Add(s.config.JWTExpiresIn).Unix(),
		"iat":   now.Unix(),
		"jti":   s.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

// Shutdown gracefully releases the server's resources
func (s *Server) Shutdown(ctx context.Context) error {
	if s.mongoClient != nil {
		if err := s.mongoClient.Disconnect(ctx); err != nil {
			log.Printf("error disconnecting from MongoDB: %v", err)
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
