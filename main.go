package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"

	"hotel-booking/config"
	"hotel-booking/database"
	"hotel-booking/events"
	"hotel-booking/handlers"
	"hotel-booking/logger"
	"hotel-booking/middleware"
	"hotel-booking/model"
	"hotel-booking/router"
	"hotel-booking/services"
)

func main() {
	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		logger.ErrorLogger.Fatalf("config: %v", err)
	}
	logger.InitLoggers(cfg.LogLevel, cfg.LogFile)

	connectCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := database.Connect(connectCtx, cfg.MongoURI, cfg.DBName)
	cancel()
	if err != nil {
		logger.ErrorLogger.Fatalf("database: %v", err)
	}
	logger.InfoLogger.Infof("connected to database %v", cfg.DBName)

	publisher, err := events.New(cfg.RabbitMQURL)
	if err != nil {
		logger.WarnLogger.Warnf("events disabled: %v", err)
		publisher = events.Noop{}
	}

	rdb := redisClient(cfg.RedisURL)
	limiterStore, err := middleware.NewLimiterStore(rdb)
	if err != nil {
		logger.ErrorLogger.Fatalf("rate limiter: %v", err)
	}
	rateLimit, err := middleware.RateLimit(cfg.RateLimit, limiterStore)
	if err != nil {
		logger.ErrorLogger.Fatalf("rate limiter: %v", err)
	}

	rooms := services.NewRoomService(database.NewRooms(store.Collection(model.RoomsCollection)))
	bookings := services.NewBookingService(database.NewBookings(store.Collection(model.BookingsCollection)), publisher)
	reviews := services.NewReviewService(database.NewReviews(store.Collection(model.ReviewsCollection)), publisher)
	images := services.NewImageService(database.NewImages(store.Collection(model.ImagesCollection)))
	issuer := services.NewTokenIssuer(cfg.TokenSecret, cfg.TokenTTL)

	app := fiber.New()
	router.SetupRoutes(app, router.Handlers{
		Auth:     handlers.NewAuthHandler(issuer, cfg.IsProduction(), cfg.CookieMaxAge),
		Rooms:    handlers.NewRoomHandler(rooms),
		Bookings: handlers.NewBookingHandler(bookings),
		Reviews:  handlers.NewReviewHandler(reviews),
		Images:   handlers.NewImageHandler(images),
	}, router.Options{
		CORSOrigins:     cfg.CORSOrigins,
		Authorize:       middleware.Authorize(cfg.TokenSecret),
		ProtectBookings: cfg.ProtectBookings,
		RateLimit:       rateLimit,
		AccessLog:       fiberlogger.New(fiberlogger.Config{Output: logger.InfoLogger.Writer()}),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.InfoLogger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.ErrorLogger.Errorf("http shutdown: %v", err)
		}
	}()

	logger.InfoLogger.Infof("hotel booking server is running on port %v (env=%v)", cfg.Port, cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.ErrorLogger.Errorf("listen: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := publisher.Close(); err != nil {
		logger.WarnLogger.Warnf("events close: %v", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := store.Disconnect(shutdownCtx); err != nil {
		logger.ErrorLogger.Errorf("database disconnect: %v", err)
	}
}

// redisClient returns nil when no URL is configured or Redis is unreachable;
// rate limiting then falls back to process memory.
func redisClient(url string) *redis.Client {
	if url == "" {
		return nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		logger.WarnLogger.Warnf("invalid REDIS_URL: %v", err)
		return nil
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.WarnLogger.Warnf("redis unavailable, using in-memory rate limits: %v", err)
		_ = client.Close()
		return nil
	}
	return client
}
