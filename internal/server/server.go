package server

import (
	"fmt"

	"gigbook/config"
	"gigbook/internal/forms"
	"gigbook/internal/handlers"
	"gigbook/internal/helpers"
	"gigbook/internal/logger"
	"gigbook/internal/middleware"
	"gigbook/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	if err := logger.Setup(cfg.LogFile); err != nil {
		return fmt.Errorf("failed to set up logging: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r, err := NewRouter(db, cfg)
	if err != nil {
		return fmt.Errorf("failed to build router: %v", err)
	}

	return r.Run(":" + cfg.Port)
}

func NewRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	if err := forms.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithField("panic", recovered).Error("recovered from panic")
		helpers.RenderServerError(c)
	}))
	r.Use(sessions.Sessions("gigbook_session", cookie.NewStore([]byte(cfg.SessionSecret))))

	r.LoadHTMLGlob("templates/**/*.html")
	r.NoRoute(helpers.RenderNotFound)

	setupRoutes(r, store.New(db))

	return r, nil
}

func setupRoutes(r *gin.Engine, s *store.Store) {
	venues := handlers.NewVenueHandler(s)
	artists := handlers.NewArtistHandler(s)
	shows := handlers.NewShowHandler(s)

	r.GET("/", handlers.Index)

	venueRoutes := r.Group("/venues")
	{
		venueRoutes.GET("", venues.List)
		venueRoutes.POST("/search", venues.Search)
		venueRoutes.GET("/create", venues.CreateForm)
		venueRoutes.POST("/create", venues.Create)
		venueRoutes.GET("/:id", venues.Show)
		venueRoutes.DELETE("/:id", venues.Delete)
		venueRoutes.GET("/:id/edit", venues.EditForm)
		venueRoutes.POST("/:id/edit", venues.Edit)
	}

	artistRoutes := r.Group("/artists")
	{
		artistRoutes.GET("", artists.List)
		artistRoutes.POST("/search", artists.Search)
		artistRoutes.GET("/create", artists.CreateForm)
		artistRoutes.POST("/create", artists.Create)
		artistRoutes.GET("/:id", artists.Show)
		artistRoutes.GET("/:id/edit", artists.EditForm)
		artistRoutes.POST("/:id/edit", artists.Edit)
	}

	showRoutes := r.Group("/shows")
	{
		showRoutes.GET("", shows.List)
		showRoutes.GET("/create", shows.CreateForm)
		showRoutes.POST("/create", shows.Create)
	}
}
