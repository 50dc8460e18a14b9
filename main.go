package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/hoshichaam/ojol_app_go/internal/config"
	"github.com/hoshichaam/ojol_app_go/internal/handlers"
	"github.com/hoshichaam/ojol_app_go/internal/middleware"
	"github.com/hoshichaam/ojol_app_go/internal/repositories"
	"github.com/hoshichaam/ojol_app_go/internal/services"
	response "github.com/hoshichaam/ojol_app_go/pkg/response"
)

const sessionCookie = "home_sid"

func main() {
	// 1) Load config (.env silent kalau tidak ada)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.SetLevel(cfg.Level())
	log.Debugw("config loaded", "api", cfg.APIURL, "env", cfg.AppEnv)

	// 2) Init dependencies
	authClient := services.NewAuthClient(cfg.APIURL, cfg.HTTPTimeout)
	repo := repositories.NewScreenRepo(cfg.SessionTTL)
	homeHandler := handlers.NewHomeHandler(repo, authClient, cfg.NativePlatforms)

	// 3) Fiber app dengan timeout
	app := fiber.New(fiber.Config{
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.HTTPTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: response.ErrorHandler,
		Immutable:    true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))

	// 4) CORS, cookie sesi layar ikut terkirim
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Platform, X-FCM-Token, X-Screen-Session",
		ExposeHeaders:    middleware.HeaderScreenSession,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: true,
	}))

	// 5) Routes
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	homeGroup := app.Group("/home", middleware.ScreenSession(sessionCookie, cfg.SessionTTL, !cfg.IsDev()))
	homeHandler.Routes(homeGroup)

	// 6) Sesi layar yang idle dibersihkan berkala
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweepSessions(sweepCtx, repo, cfg.SessionTTL)

	// 7) Server start
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Infof("Starting home BFF on %s (auth API: %s)", addr, cfg.APIURL)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server listen error: %v", err)
		}
	}()

	<-quit
	log.Info("Shutdown signal received, stopping server...")
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Info("Server stopped gracefully.")
}

func sweepSessions(ctx context.Context, repo repositories.ScreenRepo, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	interval := ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := repo.Purge(now); n > 0 {
				log.Debugw("purged idle screen sessions", "count", n, "left", repo.Len())
			}
		}
	}
}
