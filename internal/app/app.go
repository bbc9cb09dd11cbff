// Package app wires configuration, storage, services, and transports into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/redis/go-redis/v9"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/michaelschade/kenchi-sub000/internal/adapter/postgres"
	collectionrepo "github.com/michaelschade/kenchi-sub000/internal/adapter/postgres/collection"
	spacerepo "github.com/michaelschade/kenchi-sub000/internal/adapter/postgres/space"
	toolrepo "github.com/michaelschade/kenchi-sub000/internal/adapter/postgres/tool"
	userrepo "github.com/michaelschade/kenchi-sub000/internal/adapter/postgres/user"
	widgetrepo "github.com/michaelschade/kenchi-sub000/internal/adapter/postgres/widget"
	workflowrepo "github.com/michaelschade/kenchi-sub000/internal/adapter/postgres/workflow"
	"github.com/michaelschade/kenchi-sub000/internal/auth"
	"github.com/michaelschade/kenchi-sub000/internal/config"
	"github.com/michaelschade/kenchi-sub000/internal/observe"
	authservice "github.com/michaelschade/kenchi-sub000/internal/service/auth"
	"github.com/michaelschade/kenchi-sub000/internal/service/collection"
	"github.com/michaelschade/kenchi-sub000/internal/service/permission"
	"github.com/michaelschade/kenchi-sub000/internal/service/space"
	"github.com/michaelschade/kenchi-sub000/internal/service/tool"
	"github.com/michaelschade/kenchi-sub000/internal/service/widget"
	"github.com/michaelschade/kenchi-sub000/internal/service/workflow"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/dataloader"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/generated"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/resolver"
	"github.com/michaelschade/kenchi-sub000/internal/transport/middleware"
	"github.com/michaelschade/kenchi-sub000/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires storage
// and services, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: connect database: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)
	sink := observe.NewLogSink(logger)

	users := userrepo.New(pool)
	collections := collectionrepo.New(pool)
	tools := toolrepo.New(pool)
	workflows := workflowrepo.New(pool)
	spaces := spacerepo.New(pool)
	widgets := widgetrepo.New(pool)

	perms := permission.NewService(logger, collections, sink)
	toolSvc := tool.NewService(logger, tools, perms, tx, sink)
	workflowSvc := workflow.NewService(logger, workflows, perms, tx, sink)
	spaceSvc := space.NewService(logger, spaces, perms, tx, sink)
	widgetSvc := widget.NewService(logger, widgets, perms, tx, sink)
	collectionSvc := collection.NewService(logger, collections, perms)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authSvc := authservice.NewService(logger, users, jwtManager)

	var redisClient *redis.Client
	if cfg.RateLimit.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
			DB:       cfg.RateLimit.RedisDB,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("app: connect redis: %w", err)
		}
	}

	gqlServer := newGraphQLServer(logger, cfg.GraphQL, resolver.NewResolver(
		logger, toolSvc, workflowSvc, spaceSvc, widgetSvc, collectionSvc,
	))

	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	sessionHandler := rest.NewSessionHandler(authSvc, logger)

	base := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)
	gqlChain := middleware.Chain(
		middleware.Auth(authSvc),
		dataloader.Middleware(&dataloader.Repos{User: users, Collection: collections}),
	)

	var limit middleware.Middleware = func(next http.Handler) http.Handler { return next }
	if cfg.RateLimit.Enabled {
		var client redis.UniversalClient
		if redisClient != nil {
			client = redisClient
		}
		limit = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerWindow, cfg.RateLimit.Window, client).Limit()
	}

	mux := http.NewServeMux()
	mux.Handle("/graphql", base(limit(gqlChain(gqlServer))))
	mux.Handle("/auth/login", base(limit(http.HandlerFunc(sessionHandler.Login))))
	mux.HandleFunc("/healthz/live", healthHandler.Live)
	mux.HandleFunc("/healthz/ready", healthHandler.Ready)
	mux.HandleFunc("/healthz", healthHandler.Health)
	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("/playground", playground.Handler("kenchi", "/graphql"))
	}

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("app: serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return nil
}

// newGraphQLServer builds the gqlgen handler with transports, caching, and
// the error presenter configured.
func newGraphQLServer(logger *slog.Logger, cfg config.GraphQLConfig, r *resolver.Resolver) *gqlhandler.Server {
	srv := gqlhandler.New(generated.NewExecutableSchema(generated.Config{Resolvers: r}))
	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})
	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))
	srv.Use(extension.AutomaticPersistedQuery{Cache: lru.New[string](100)})
	if cfg.IntrospectionEnabled {
		srv.Use(extension.Introspection{})
	}
	if cfg.ComplexityLimit > 0 {
		srv.Use(extension.FixedComplexityLimit(cfg.ComplexityLimit))
	}
	srv.SetErrorPresenter(graphql.NewErrorPresenter(logger))
	return srv
}
