package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env file loader for local development
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iamkarol/fitness-profile-service/internal/config"
	"github.com/iamkarol/fitness-profile-service/internal/database"
	"github.com/iamkarol/fitness-profile-service/internal/handler"
	"github.com/iamkarol/fitness-profile-service/internal/middleware"
	"github.com/iamkarol/fitness-profile-service/internal/queue"
	"github.com/iamkarol/fitness-profile-service/internal/repository"
	"github.com/iamkarol/fitness-profile-service/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set env vars directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Redis is optional: a nil client turns the profile cache into a pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, profile cache disabled")
	}
	cache := middleware.NewProfileCache(config.LoadCacheConfig(), rdb)

	accounts := repository.NewAccountRepo(db)
	profiles := repository.NewProfileRepo(db)

	e := echo.New()
	e.Use(echomw.Logger())  // request logging
	e.Use(echomw.Recover()) // convert panics into 500s

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, accounts))
	router.RegisterProfile(e, handler.NewProfileHandler(profiles, cache), cache, cfg.JWTSecret)

	// Background consumer for signup events (welcome log / email hook).
	go func() {
		if err := queue.StartSignupConsumer(); err != nil {
			log.Printf("signup consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
