package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lizbakes/cakeapp-backend/api/controllers"
	"github.com/lizbakes/cakeapp-backend/api/middleware"
	"github.com/lizbakes/cakeapp-backend/internal/auth"
	"github.com/lizbakes/cakeapp-backend/internal/cakes"
	"github.com/lizbakes/cakeapp-backend/internal/deliveries"
	"github.com/lizbakes/cakeapp-backend/internal/designs"
	"github.com/lizbakes/cakeapp-backend/internal/orders"
	"github.com/lizbakes/cakeapp-backend/internal/stages"
	"github.com/lizbakes/cakeapp-backend/internal/users"
	"github.com/lizbakes/cakeapp-backend/pkg/config"
	"github.com/lizbakes/cakeapp-backend/pkg/logger"
	"github.com/lizbakes/cakeapp-backend/pkg/redis"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config *config.Config
	Logger *logger.Logger

	DBPinger    controllers.Pinger
	RedisClient *redis.Client

	// RateLimiter overrides the redis-backed store when set.
	RateLimiter middleware.RateLimiterStore

	MetricsRegistry *prometheus.Registry

	AuthService         auth.Service
	RegisterService     auth.RegisterService
	VerificationService auth.VerificationService
	UsersService        users.Service
	OrdersService       orders.Service
	DesignsService      designs.Service
	CakesService        cakes.Service
	DeliveriesService   deliveries.Service
	StagesService       stages.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)
	resendPolicy := middleware.NewAuthRateLimitPolicy(
		"resend",
		cfg.AuthRateLimit.ResendWindow,
		cfg.AuthRateLimit.ResendIPLimit,
		cfg.AuthRateLimit.ResendEmailLimit,
	)
	// Codes never expire, so the verify window is the only guessing control.
	verifyPolicy := middleware.NewAuthRateLimitPolicy(
		"verify",
		cfg.AuthRateLimit.VerifyWindow,
		cfg.AuthRateLimit.VerifyIPLimit,
		cfg.AuthRateLimit.VerifyEmailLimit,
	)

	rateStore := deps.RateLimiter
	if rateStore == nil {
		rateStore = limiter(deps.RedisClient)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg.App.Env))
		r.Get("/ready", controllers.HealthReady(cfg.App.Env, deps.DBPinger, redisPinger(deps.RedisClient), logg))
	})

	if deps.MetricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.MetricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/users", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, rateStore, logg)).
			Post("/register", controllers.Register(deps.RegisterService, logg))
		r.With(middleware.AuthRateLimit(verifyPolicy, rateStore, logg)).
			Post("/verify", controllers.Verify(deps.VerificationService, logg))
		r.With(middleware.AuthRateLimit(resendPolicy, rateStore, logg)).
			Post("/resend-verification", controllers.ResendVerification(deps.VerificationService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, rateStore, logg)).
			Post("/login", controllers.Login(deps.AuthService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.With(middleware.RequireRole("admin", logg)).Get("/", controllers.UsersList(deps.UsersService, logg))
			r.Get("/{id}", controllers.UsersGet(deps.UsersService, logg))
			r.Put("/{id}", controllers.UsersUpdate(deps.UsersService, logg))
			r.Delete("/{id}", controllers.UsersDelete(deps.UsersService, logg))
			r.Get("/{userId}/orders", controllers.OrdersListByUser(deps.OrdersService, logg))
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(deps.OrdersService, logg))
			r.Post("/", controllers.OrdersCreate(deps.OrdersService, logg))
			r.Get("/{id}", controllers.OrdersGet(deps.OrdersService, logg))
			r.Patch("/{id}/status", controllers.OrdersUpdateStatus(deps.OrdersService, logg))
			r.Patch("/{id}/details", controllers.OrdersUpdateDetails(deps.OrdersService, logg))
			r.Delete("/{id}", controllers.OrdersDelete(deps.OrdersService, logg))
			r.Get("/{orderId}/stages", controllers.StagesListByOrder(deps.StagesService, logg))
		})

		r.Route("/designs", func(r chi.Router) {
			r.Get("/", controllers.DesignsList(deps.DesignsService, logg))
			r.Post("/", controllers.DesignsCreate(deps.DesignsService, logg))
			r.Get("/{id}", controllers.DesignsGet(deps.DesignsService, logg))
			r.Put("/{id}", controllers.DesignsUpdate(deps.DesignsService, logg))
			r.Delete("/{id}", controllers.DesignsDelete(deps.DesignsService, logg))
		})

		r.Route("/cakes", func(r chi.Router) {
			r.Get("/", controllers.CakesList(deps.CakesService, logg))
			r.Post("/", controllers.CakesCreate(deps.CakesService, logg))
			r.Get("/{id}", controllers.CakesGet(deps.CakesService, logg))
			r.Put("/{id}", controllers.CakesUpdate(deps.CakesService, logg))
			r.Delete("/{id}", controllers.CakesDelete(deps.CakesService, logg))
		})

		r.Route("/deliveries", func(r chi.Router) {
			r.Get("/", controllers.DeliveriesList(deps.DeliveriesService, logg))
			r.Post("/", controllers.DeliveriesSchedule(deps.DeliveriesService, logg))
			r.Get("/{id}", controllers.DeliveriesGet(deps.DeliveriesService, logg))
			r.Put("/{id}", controllers.DeliveriesUpdate(deps.DeliveriesService, logg))
			r.Delete("/{id}", controllers.DeliveriesDelete(deps.DeliveriesService, logg))
		})

		r.Route("/stages", func(r chi.Router) {
			r.Get("/", controllers.StagesList(deps.StagesService, logg))
			r.Post("/", controllers.StagesCreate(deps.StagesService, logg))
			r.Get("/{id}", controllers.StagesGet(deps.StagesService, logg))
			r.Patch("/{id}/complete", controllers.StagesComplete(deps.StagesService, logg))
			r.Delete("/{id}", controllers.StagesDelete(deps.StagesService, logg))
		})
	})

	return r
}

// limiter hides a typed-nil redis client from the middleware.
func limiter(client *redis.Client) middleware.RateLimiterStore {
	if client == nil {
		return nil
	}
	return client
}

func redisPinger(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
