package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lizbakes/cakeapp-backend/api/routes"
	"github.com/lizbakes/cakeapp-backend/internal/auth"
	"github.com/lizbakes/cakeapp-backend/internal/cakes"
	"github.com/lizbakes/cakeapp-backend/internal/deliveries"
	"github.com/lizbakes/cakeapp-backend/internal/designs"
	"github.com/lizbakes/cakeapp-backend/internal/orders"
	"github.com/lizbakes/cakeapp-backend/internal/stages"
	"github.com/lizbakes/cakeapp-backend/internal/users"
	"github.com/lizbakes/cakeapp-backend/pkg/config"
	"github.com/lizbakes/cakeapp-backend/pkg/db"
	"github.com/lizbakes/cakeapp-backend/pkg/instance"
	"github.com/lizbakes/cakeapp-backend/pkg/logger"
	"github.com/lizbakes/cakeapp-backend/pkg/mailer"
	"github.com/lizbakes/cakeapp-backend/pkg/metrics"
	"github.com/lizbakes/cakeapp-backend/pkg/migrate"
	"github.com/lizbakes/cakeapp-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	var mailClient mailer.Sender
	if cfg.Sendgrid.APIKey != "" {
		client, err := mailer.NewClient(cfg.Sendgrid)
		if err != nil {
			logg.Error(context.Background(), "failed to create mail client", err)
			os.Exit(1)
		}
		mailClient = client
	} else {
		logg.Warn(context.Background(), "sendgrid api key missing, verification emails disabled")
	}

	registry := prometheus.NewRegistry()
	emailMetrics := metrics.NewEmailMetrics(registry)

	usersRepo := users.NewRepository(dbClient.DB())

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		Mailer:         mailClient,
		Logger:         logg,
		EmailMetrics:   emailMetrics,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	verificationService, err := auth.NewVerificationService(auth.VerificationServiceParams{
		Repo:         usersRepo,
		Mailer:       mailClient,
		Logger:       logg,
		EmailMetrics: emailMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create verification service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:  usersRepo,
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	usersService, err := users.NewService(users.ServiceParams{
		Repo:           usersRepo,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	designsService, err := designs.NewService(designs.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create designs service", err)
		os.Exit(1)
	}

	cakesService, err := cakes.NewService(cakes.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create cakes service", err)
		os.Exit(1)
	}

	deliveriesService, err := deliveries.NewService(deliveries.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create deliveries service", err)
		os.Exit(1)
	}

	stagesService, err := stages.NewService(stages.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create stages service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:              cfg,
			Logger:              logg,
			DBPinger:            dbClient,
			RedisClient:         redisClient,
			MetricsRegistry:     registry,
			AuthService:         authService,
			RegisterService:     registerService,
			VerificationService: verificationService,
			UsersService:        usersService,
			OrdersService:       ordersService,
			DesignsService:      designsService,
			CakesService:        cakesService,
			DeliveriesService:   deliveriesService,
			StagesService:       stagesService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
