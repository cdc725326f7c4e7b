package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/backend"
	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/dashboard"
	"github.com/2beens/fitcoach/internal/middleware"
	"github.com/2beens/fitcoach/internal/notify"
	"github.com/2beens/fitcoach/internal/onboarding"
	"github.com/2beens/fitcoach/internal/profile"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/transition"
	"github.com/2beens/fitcoach/internal/wellness"
	"github.com/2beens/fitcoach/pkg"
)

const cleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config        *config.Config
	stores        *stores
	hub           *notify.Hub
	backendClient *backend.Client

	redisClient  *redis.Client
	rateLimiter  middleware.RequestRateLimiter
	loginChecker auth.Checker
	authService  *auth.Service
	identity     auth.IdentityProvider

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()

	unsubscribers []func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	FirebaseAPIKey          string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	st, err := setupStores(ctx, cfg, rdb, params.HoneycombTracingEnabled)
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("setup stores: %w", err)
	}

	promRegistry := metrics.SetupPrometheus(st.collectors...)
	metricsManager := metrics.NewManager("fitcoach", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled)
	if err != nil {
		st.close()
		_ = rdb.Close()
		return nil, err
	}

	identity, err := auth.NewFirebaseProvider(ctx, params.FirebaseAPIKey)
	if err != nil {
		otelShutdown()
		st.close()
		_ = rdb.Close()
		return nil, fmt.Errorf("new firebase provider: %w", err)
	}

	sessionTTL := cfg.SessionTTL()
	s := &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,
		stores:      st,
		hub:         notify.NewHub(),
		backendClient: backend.NewClient(
			cfg.BackendBaseURL,
			cfg.BackendTimeout(),
			metricsManager,
		),

		redisClient:  rdb,
		rateLimiter:  redis_rate.NewLimiter(rdb),
		loginChecker: auth.NewLoginChecker(sessionTTL, rdb),
		authService:  auth.NewAuthService(sessionTTL, rdb),
		identity:     identity,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	go s.runCleanup(ctx)

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitcoach-router"))

	onboardingStore := onboarding.NewStore(s.stores.records, s.hub)

	dashboardCache := dashboard.NewCache(
		s.stores.caches,
		s.config.DashboardCacheTTL(),
		nil,
		s.metricsManager,
	)
	s.unsubscribers = append(s.unsubscribers, dashboardCache.SubscribeTo(s.hub))
	dashboardService := dashboard.NewService(dashboardCache, s.backendClient, onboardingStore)

	profileService := profile.NewService(profile.Params{
		Backend:        s.backendClient,
		Onboarding:     onboardingStore,
		Store:          s.stores.caches,
		Hub:            s.hub,
		TTL:            s.config.ProfileCacheTTL(),
		MetricsManager: s.metricsManager,
	})
	s.unsubscribers = append(s.unsubscribers, profileService.SubscribeTo(s.hub))

	transitions := transition.NewFactory(transition.Params{
		Saver:          s.backendClient,
		Prefetchers:    []transition.Prefetcher{dashboardService, profileService},
		MinDuration:    s.config.TransitionMinDuration(),
		OnReady:        s.onTransitionReady,
		MetricsManager: s.metricsManager,
	})

	limitAllowedPerMin := s.config.LoginRateLimitAllowedPerMin

	r.HandleFunc("/", s.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")

	authHandler := auth.NewHandler(s.identity, s.authService, onboardingStore)
	authRouter := r.PathPrefix("/a").Subrouter()
	authRouter.HandleFunc("/signup", authHandler.HandleSignup).Methods("POST", "OPTIONS").Name("signup")
	authRouter.HandleFunc("/login", authHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", authHandler.HandleLogout).Methods("GET", "POST", "OPTIONS").Name("logout")
	// rate limit the auth endpoints to prevent abuse
	authRouter.Use(middleware.RateLimit(s.rateLimiter, "auth", limitAllowedPerMin, s.metricsManager))

	onboardingHandler := onboarding.NewHandler(onboardingStore, transitions)
	onboardingSubmit := middleware.RateLimit(s.rateLimiter, "onboarding", limitAllowedPerMin, s.metricsManager)(
		http.HandlerFunc(onboardingHandler.HandleSubmit),
	)
	r.Handle("/onboarding", onboardingSubmit).Methods("POST", "OPTIONS").Name("onboarding-submit")
	r.HandleFunc("/onboarding", onboardingHandler.HandleGet).Methods("GET").Name("onboarding-get")
	r.HandleFunc("/onboarding/metrics", onboardingHandler.HandleGetMetrics).Methods("GET", "OPTIONS").Name("onboarding-metrics")

	dashboardHandler := dashboard.NewHandler(dashboardService)
	r.HandleFunc("/dashboard", dashboardHandler.HandleGet).Methods("GET", "OPTIONS").Name("dashboard")

	profileHandler := profile.NewHandler(profileService)
	r.HandleFunc("/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("profile-get")
	r.HandleFunc("/profile", profileHandler.HandleSave).Methods("POST").Name("profile-save")

	wellnessHandler := wellness.NewHandler(s.backendClient, s.hub)
	r.HandleFunc("/wellness/analyze", wellnessHandler.HandleAnalyze).Methods("POST", "OPTIONS").Name("wellness-analyze")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest(middleware.DefaultMaxBodyBytes))

	return r
}

// onTransitionReady marks the one-shot release of a user to the dashboard.
func (s *Server) onTransitionReady() {
	log.Debugln("onboarding transition ready, redirecting to /dashboard")
	if s.metricsManager != nil {
		s.metricsManager.CounterDashboardRedirects.Inc()
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	if s.versionInfo != "" {
		pkg.WriteTextResponseOK(w, "fitcoach is up, version: "+s.versionInfo)
		return
	}
	pkg.WriteTextResponseOK(w, "fitcoach is up")
}

// runCleanup drops stale sessions, and with the postgres backend also
// expired kv rows, until ctx is done.
func (s *Server) runCleanup(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanup(ctx)
		}
	}
}

func (s *Server) cleanup(ctx context.Context) {
	cleaned := s.authService.ScanAndClean(ctx)
	log.Debugf("cleanup: removed %d sessions", cleaned)

	if s.stores.postgresStore == nil {
		return
	}
	purged, err := s.stores.postgresStore.PurgeExpired(ctx)
	if err != nil {
		log.Errorf("cleanup: purge expired kv entries: %s", err)
		return
	}
	log.Debugf("cleanup: purged %d expired kv entries", purged)
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metrics.Handler(s.promRegistry))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics http server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	for _, unsubscribe := range s.unsubscribers {
		unsubscribe()
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
		}
	}

	s.stores.close()

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	return err
}
