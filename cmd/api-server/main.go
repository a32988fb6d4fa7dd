package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/nrednav/cuid2"
	"in.co.kisanmitra/internal/boot"
	"in.co.kisanmitra/internal/handlers"
	"in.co.kisanmitra/internal/service/auth"
	"in.co.kisanmitra/internal/service/community"
	"in.co.kisanmitra/internal/service/farm"
	"in.co.kisanmitra/internal/service/token"
	"in.co.kisanmitra/internal/store"
)

type AuthService interface {
	handlers.AuthService
}

type FarmService interface {
	handlers.FarmService
}

type CommunityService interface {
	handlers.CommunityService
}

type services struct {
	auth      AuthService
	farm      FarmService
	community CommunityService
}

func newServices(config *boot.Config, db *store.Store) *services {
	return &services{
		auth:      auth.New(config, db, token.New(config)),
		farm:      farm.New(db),
		community: community.New(db),
	}
}

func main() {
	config, err := boot.Load()
	if err != nil {
		log.Fatalf("boot: %+v", err)
	}

	db, err := store.Open(config)
	if err != nil {
		log.Fatalf("opening store: %+v", err)
	}
	defer db.Close()

	svc := newServices(config, db)

	server := echo.New()
	server.Use(middleware.BodyLimit("1M"))
	server.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return cuid2.Generate()
		},
	}))
	server.Use(echoprometheus.NewMiddleware("kisanmitra"))
	server.Use(middleware.Recover())

	server.Logger.SetLevel(log.INFO)

	headers := []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization}
	server.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{config.AllowedOrigin},
		AllowHeaders:     headers,
		AllowCredentials: true,
	}))

	server.POST("/api/auth/verify-mobile", handlers.VerifyMobile(svc.auth, config))
	server.POST("/api/auth/signup", handlers.Signup(svc.auth, config))
	server.POST("/api/auth/login", handlers.Login(svc.auth, config))
	server.POST("/api/auth/refresh", handlers.Refresh(svc.auth, config))
	server.POST("/api/auth/logout", handlers.Logout(config))

	gated := handlers.RequireAuth(svc.auth)
	optional := handlers.OptionalAuth(svc.auth)

	server.GET("/api/auth/profile", handlers.GetProfile(), gated)
	server.PUT("/api/auth/profile", handlers.UpdateProfile(svc.auth), gated)

	server.POST("/api/crops", handlers.CreateCrop(svc.farm), gated)
	server.GET("/api/crops", handlers.ListCrops(svc.farm), gated)
	server.PUT("/api/crops/:id", handlers.UpdateCrop(svc.farm), gated)
	server.DELETE("/api/crops/:id", handlers.DeleteCrop(svc.farm), gated)

	server.POST("/api/posts", handlers.CreatePost(svc.community), gated)
	server.GET("/api/posts", handlers.ListPosts(svc.community), optional)
	server.GET("/api/posts/:id", handlers.GetPost(svc.community), optional)
	server.DELETE("/api/posts/:id", handlers.DeletePost(svc.community), gated)
	server.POST("/api/posts/:id/comments", handlers.AddComment(svc.community), gated)
	server.GET("/api/posts/:id/comments", handlers.ListComments(svc.community))
	server.DELETE("/api/comments/:id", handlers.DeleteComment(svc.community), gated)

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%d", config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	go func() {
		if err := server.Start(fmt.Sprintf(":%d", config.Port)); err != nil && err != http.ErrServerClosed {
			server.Logger.Fatal("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		server.Logger.Fatal(err)
	}
}
