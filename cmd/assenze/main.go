package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/frabiasco/assenze/internal/api"
	"github.com/frabiasco/assenze/internal/db"
	"github.com/frabiasco/assenze/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env failed: %v", err)
	}

	location := mustLoadLocation(getEnv("TZ", "Europe/Rome"))
	time.Local = location

	port := getEnv("PORT", "3000")
	backend := getEnv("STORE_BACKEND", "file")
	admin := api.AdminIdentity{
		Email:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		Password: getEnv("ADMIN_PASSWORD", "change_me"),
	}

	readiness := services.NewReadiness()

	storeCtx, cancelStoreCtx := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := db.OpenStore(storeCtx, backend, db.StoreConfig{
		DataPath:   getEnv("DATA_PATH", filepath.Join("data", "appdata.json")),
		SQLitePath: getEnv("DB_PATH", filepath.Join("data", "assenze.db")),
		BadgerPath: getEnv("BADGER_PATH", filepath.Join("data", "badger")),
		MongoURI:   getEnv("MONGO_URI", ""),
	})
	cancelStoreCtx()
	if err != nil {
		log.Fatalf("store init failed (%s): %v", backend, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("store close failed: %v", err)
		}
	}()

	templatesDir := getEnv("TEMPLATES_DIR", filepath.Join("web", "templates"))
	staticDir := getEnv("STATIC_DIR", filepath.Join("web", "static"))

	handler, err := api.NewHandler(store, readiness, templatesDir, staticDir, location, admin)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "AssenzaFacile",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	app.Static("/static", staticDir)
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	readiness.MarkReady()
	log.Printf("AssenzaFacile listening on http://0.0.0.0:%s (store: %s, tz: %s)", port, backend, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
