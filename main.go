package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"busticket/internal/booking"
	"busticket/internal/cache"
	intconfig "busticket/internal/config"
	router "busticket/internal/http"
	"busticket/internal/repositories"
	"busticket/internal/search"
	"busticket/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	policy := intconfig.LoadPolicy()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env.DBDSN)
	defer intconfig.CloseDB()

	redisClient := intconfig.ConnectRedis(env.RedisAddr)

	routeRepo := repositories.RouteRepo{DB: db}
	bookingRepo := repositories.BookingRepo{DB: db}

	searches := search.NewRegistry(cache.NewRoutes(routeRepo, redisClient))
	sessions := services.NewSessionService(policy, booking.Coordinator{Store: bookingRepo})
	defer sessions.Close()

	deps := router.Deps{
		Env:      env,
		Searches: searches,
		Sessions: sessions,
		Bookings: services.BookingService{Repo: bookingRepo, Policy: policy},
		Docs:     services.DocsService{Loader: bookingRepo.GetByID},
		Routes:   routeRepo,
	}

	r := router.NewRouter(deps)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Println("server stopped cleanly.")
}
