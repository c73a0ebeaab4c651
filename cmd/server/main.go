package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sudo-init-do/accounthub/internal/account"
	"github.com/sudo-init-do/accounthub/internal/auth"
	"github.com/sudo-init-do/accounthub/internal/config"
	"github.com/sudo-init-do/accounthub/internal/db"
	mware "github.com/sudo-init-do/accounthub/internal/middleware"
	"github.com/sudo-init-do/accounthub/internal/upload"
	"github.com/sudo-init-do/accounthub/internal/user"
)

func main() {
	// .env overlay for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	repo := user.NewPostgresRepository(pool)
	tokens := auth.NewTokens([]byte(cfg.JWTSecret), cfg.TokenTTL)
	svc := account.NewService(repo, tokens)
	h := account.NewHandler(svc, upload.NewStore(cfg.AvatarDir))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "service": "accounthub"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	// Public auth routes with per-IP rate limiting to slow down abuse
	public := e.Group("")
	public.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))
	public.POST("/register", h.Register)
	public.POST("/login", h.Login)

	// Protected routes
	api := e.Group("")
	api.Use(mware.RequireAuth(tokens, repo))
	api.GET("/me", h.Me)
	api.PATCH("/profile", h.UpdateProfile)
	api.PATCH("/password", h.ChangePassword)

	// Serve uploaded avatars back at their public path
	e.Static(upload.PublicPrefix, cfg.AvatarDir)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
