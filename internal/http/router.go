package api

import (
	"log"
	stdhttp "net/http"

	intconfig "busticket/internal/config"
	h "busticket/internal/http/handlers"
	"busticket/internal/http/middleware"
	"busticket/internal/repositories"
	"busticket/internal/search"
	"busticket/internal/services"

	"github.com/gin-gonic/gin"
)

// Deps carries the wired services the router mounts. Everything stateful is
// built in main and passed down; handlers hold no globals.
type Deps struct {
	Env      intconfig.Env
	Searches *search.Registry
	Sessions *services.SessionService
	Bookings services.BookingService
	Docs     services.DocsService
	Routes   repositories.RouteRepo
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(d.Env.JWTSecret)
	limiter := middleware.NewClientLimiter(10, 20)

	authH := h.AuthHandler{Secret: secret}
	searchH := h.SearchHandler{Registry: d.Searches}
	draftH := h.DraftHandler{Sessions: d.Sessions, Routes: d.Routes}
	bookingH := h.BookingHandler{Service: d.Bookings, Docs: d.Docs}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.Use(middleware.RateLimit(limiter))
		auth.POST("/login", authH.Login)
		auth.POST("/register", authH.Register)

		// Search is open to anonymous clients; authenticated users get a
		// searcher keyed to their account instead of their IP.
		api.POST("/search", middleware.AuthOptional(secret), middleware.RateLimit(limiter), searchH.Search)

		drafts := api.Group("/drafts")
		drafts.Use(middleware.RequireAuth(secret))
		drafts.POST("", draftH.Create)
		drafts.GET("/:id", draftH.Get)
		drafts.POST("/:id/toggle-seat", draftH.ToggleSeat)
		drafts.POST("/:id/passengers", draftH.AddPassenger)
		drafts.PATCH("/:id/passengers/:pid", draftH.UpdatePassenger)
		drafts.DELETE("/:id/passengers/:pid", draftH.RemovePassenger)
		drafts.POST("/:id/payment", draftH.ChoosePayment)
		drafts.POST("/:id/submit", draftH.Submit)
		drafts.DELETE("/:id", draftH.Abandon)

		bookings := api.Group("/bookings")
		bookings.Use(middleware.RequireAuth(secret))
		bookings.GET("", bookingH.List)
		bookings.GET("/:id", bookingH.Get)
		bookings.POST("/:id/cancel", bookingH.Cancel)
		bookings.GET("/:id/e-ticket", bookingH.ETicket)
		bookings.GET("/:id/invoice", bookingH.Invoice)
	}

	return r
}
