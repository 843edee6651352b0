package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"estateoffice/internal/config"
	"estateoffice/internal/database"
	"estateoffice/internal/domain"
	"estateoffice/internal/middleware"
	"estateoffice/internal/modules/auth"
	"estateoffice/internal/modules/blog"
	"estateoffice/internal/modules/contact"
	"estateoffice/internal/modules/crm"
	"estateoffice/internal/modules/geoip"
	"estateoffice/internal/modules/notification"
	"estateoffice/internal/modules/offer"
	"estateoffice/internal/modules/property"
	"estateoffice/internal/modules/testimonial"
	"estateoffice/internal/modules/upload"
	"estateoffice/internal/pkg/capability"
	jwtsvc "estateoffice/internal/pkg/jwt"
	"estateoffice/internal/pkg/logger"
	"estateoffice/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Property{},
		&domain.ContactLead{},
		&domain.InvestmentOffer{},
		&domain.BlogPost{},
		&domain.Testimonial{},
		&domain.Client{},
		&domain.Task{},
		&domain.Notification{},
	); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	clientRepo := repository.NewClientRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	hub := notification.NewHub()
	defer hub.Close()
	notifService := notification.NewService(notifRepo, userRepo, hub, log)
	notifHandler := notification.NewHandler(notifService)
	wsHandler := notification.NewWSHandler(hub, j, log)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	geoClient := geoip.NewClient(cfg.GeoIPBaseURL, cfg.GeoIPTimeout)
	geoService := geoip.NewService(geoClient, log)
	geoHandler := geoip.NewHandler(geoService)

	contactService := contact.NewService(leadRepo, notifService)
	contactHandler := contact.NewHandler(contactService)

	sessionStore := offer.NewRedisSessionStore(rdb, cfg.WizardSessionTTL)
	offerService := offer.NewService(sessionStore, offerRepo, geoService, notifService, log)
	offerHandler := offer.NewHandler(offerService)

	propertyService := property.NewService(propertyRepo)
	propertyHandler := property.NewHandler(propertyService)

	blogService := blog.NewService(blogRepo)
	blogHandler := blog.NewHandler(blogService)

	testimonialService := testimonial.NewService(testimonialRepo, notifService, log)
	testimonialHandler := testimonial.NewHandler(testimonialService)

	crmService := crm.NewService(clientRepo, taskRepo, log)
	crmHandler := crm.NewHandler(crmService)
	reminder := crm.NewReminder(taskRepo, notifService, log, cfg.ReminderInterval, cfg.ReminderWindow)

	uploadHandler := upload.NewHandler(cfg.UploadDir, cfg.UploadBaseURL)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static(cfg.UploadBaseURL, cfg.UploadDir)
	wsHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		geoHandler.RegisterRoutes(v1)
		contactHandler.RegisterPublicRoutes(v1)
		offerHandler.RegisterPublicRoutes(v1)
		propertyHandler.RegisterPublicRoutes(v1)
		blogHandler.RegisterPublicRoutes(v1)
		testimonialHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("", middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			notifHandler.RegisterRoutes(protected)

			guard := func(c capability.Capability) *gin.RouterGroup {
				return protected.Group("", middleware.RequireCapability(c))
			}
			authHandler.RegisterAdminRoutes(guard(capability.ManageUsers))
			contactHandler.RegisterAdminRoutes(guard(capability.ManageLeads))
			offerHandler.RegisterAdminRoutes(guard(capability.ManageOffers))
			propertyHandler.RegisterAdminRoutes(guard(capability.ManageProperties))
			blogHandler.RegisterAdminRoutes(guard(capability.ManageBlog))
			testimonialHandler.RegisterAdminRoutes(guard(capability.ManageTestimonials))
			crmHandler.RegisterRoutes(guard(capability.ManageCRM))
			uploadHandler.RegisterRoutes(guard(capability.UploadMedia))
		}
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go reminder.Run(runCtx)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-runCtx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := rdb.Close(); err != nil {
		log.Warn("redis close failed", zap.Error(err))
	}
}
