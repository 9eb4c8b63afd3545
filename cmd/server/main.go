package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/lib/pq"

	"verigate/internal/bankfeed"
	"verigate/internal/employer"
	"verigate/internal/employer/ceid"
	"verigate/internal/employer/engine"
	employerhandler "verigate/internal/employer/handler"
	employermetrics "verigate/internal/employer/metrics"
	"verigate/internal/employer/refdata"
	httpapi "verigate/internal/http"
	"verigate/internal/identity"
	identityhandler "verigate/internal/identity/handler"
	identitymetrics "verigate/internal/identity/metrics"
	"verigate/internal/identity/providers"
	"verigate/internal/income"
	incomehandler "verigate/internal/income/handler"
	incomemetrics "verigate/internal/income/metrics"
	"verigate/internal/platform/config"
	"verigate/internal/platform/httpserver"
	"verigate/internal/platform/logger"
	"verigate/internal/platform/middleware"
	platformredis "verigate/internal/platform/redis"
	"verigate/internal/ratelimit"
	"verigate/internal/session"
	sessionhandler "verigate/internal/session/handler"
	"verigate/pkg/platform/audit"
)

const (
	tokenIssuer   = "verigate"
	tokenAudience = "verigate-api"

	sessionStartLimit  = 10
	sessionStartWindow = time.Minute
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	startCtx, startCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startCancel()

	// Audit trail. Without brokers configured, events are dropped.
	var auditPublisher audit.Publisher = audit.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher, err := audit.NewKafkaPublisher(startCtx, cfg.Kafka.Brokers, cfg.Kafka.AuditTopic)
		if err != nil {
			log.Error("kafka audit publisher init failed", "error", err)
			os.Exit(1)
		}
		defer kafkaPublisher.Close()
		auditPublisher = kafkaPublisher
		log.Info("audit trail enabled", "topic", cfg.Kafka.AuditTopic)
	}

	// CEID cache. Redis when configured, in-process otherwise.
	var ceidStore ceid.Store = ceid.NewInMemoryStore()
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		ceidStore = ceid.NewRedisStore(redisClient.Client)
		log.Info("ceid cache backed by redis")
	}

	// Address directory. Loaded once; the gates never touch the database.
	directory := refdata.MustDirectory(refdata.DefaultAddresses())
	if cfg.Postgres.DSN != "" {
		db, err := sql.Open("postgres", cfg.Postgres.DSN)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		source := refdata.NewPostgresSource(db)
		if err := source.Migrate(startCtx); err != nil {
			log.Error("address directory migration failed", "error", err)
			os.Exit(1)
		}
		if err := source.Seed(startCtx, refdata.DefaultAddresses()); err != nil {
			log.Error("address directory seed failed", "error", err)
			os.Exit(1)
		}
		directory, err = source.LoadDirectory(startCtx)
		if err != nil {
			log.Error("address directory load failed", "error", err)
			os.Exit(1)
		}
		log.Info("address directory loaded from postgres", "entries", directory.Len())
	}

	feed := bankfeed.NewMockFeed(cfg.ProviderDelay)

	// Employer verification.
	empMetrics := employermetrics.New()
	resolver := ceid.NewResolver(ceidStore, log, empMetrics)
	pipeline := engine.NewPipeline(
		resolver,
		engine.NewExistenceGate(directory),
		engine.NewLinkageGate(refdata.PayrollProviders()),
		engine.NewSanityGate(directory, refdata.HighInfrastructureRoles(), cfg.MaxCommuteKm),
	)
	employerService := employer.NewService(pipeline, feed, auditPublisher, log, empMetrics)

	// Identity flow.
	identityService := identity.NewService(
		identity.NewInMemoryStore(),
		providers.NewSimulatedDocumentProcessor(cfg.ProviderDelay),
		providers.NewSimulatedBiometricVerifier(cfg.ProviderDelay),
		providers.NewSimulatedOTPProvider(cfg.ProviderDelay),
		auditPublisher,
		log,
		identitymetrics.New(),
	)

	// Income flow.
	incomeService := income.NewService(feed, auditPublisher, log, incomemetrics.New())

	// Sessions.
	tokens := session.NewTokenService(cfg.JWTSigningKey, tokenIssuer, tokenAudience)
	sessionService := session.NewService(tokens, cfg.SessionTTL, auditPublisher, log)

	limiter := ratelimit.NewMiddleware(
		ratelimit.NewInMemoryBucketStore(),
		log,
		sessionStartLimit,
		sessionStartWindow,
	)

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:           log,
		SessionValidator: tokens,
		RateLimit:        limiter,
		HTTPMetrics:      middleware.NewHTTPMetrics(),

		Session:  sessionhandler.New(sessionService, log),
		Identity: identityhandler.New(identityService, log),
		Employer: employerhandler.New(employerService, log),
		Income:   incomehandler.New(incomeService, log),
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting verigate", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
