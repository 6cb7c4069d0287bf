package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/drblury/docweaver/config"
	"github.com/drblury/docweaver/controller"
	"github.com/drblury/docweaver/info"
	"github.com/drblury/docweaver/probe"
	"github.com/drblury/docweaver/responder"
	"github.com/drblury/docweaver/router"
	"github.com/drblury/docweaver/store"
)

const metricsNamespace = "bookshelf"

type server struct {
	cfg     *config.Config
	logger  *slog.Logger
	handler http.Handler
	close   func(context.Context) error
}

// backend is the repository behind /books plus what readiness and shutdown
// need to know about it.
type backend struct {
	kind   string
	repo   store.Repository[*Book]
	checks []probe.Check
	close  func(context.Context) error
}

func newServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*server, error) {
	be, err := openBackend(ctx, cfg.Mongo, logger)
	if err != nil {
		return nil, err
	}

	handler, err := newHandler(cfg, logger, be)
	if err != nil {
		_ = be.close(ctx)
		return nil, err
	}

	return &server{cfg: cfg, logger: logger, handler: handler, close: be.close}, nil
}

func openBackend(ctx context.Context, cfg config.MongoConfig, logger *slog.Logger) (*backend, error) {
	if cfg.URI == "" {
		logger.Warn("mongo.uri is empty, books are kept in memory")
		repo := store.NewMemoryRepository(newBook)
		return &backend{
			kind:   "memory",
			repo:   repo,
			checks: []probe.Check{probe.Repository("memory store", repo)},
			close:  func(context.Context) error { return nil },
		}, nil
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	repo := store.NewMongoRepository(client.Database(cfg.Database).Collection(cfg.Collection), newBook)
	logger.Info("Using mongo store", "database", cfg.Database, "collection", cfg.Collection)

	return &backend{
		kind: "mongo",
		repo: repo,
		checks: []probe.Check{
			probe.Mongo(client, readpref.Primary()),
			probe.Repository(cfg.Collection+" collection", repo),
		},
		close: client.Disconnect,
	}, nil
}

func newHandler(cfg *config.Config, logger *slog.Logger, be *backend) (http.Handler, error) {
	swagger, err := loadOpenAPI()
	if err != nil {
		return nil, err
	}
	uiType, err := info.ParseUIType(cfg.Docs.UI)
	if err != nil {
		return nil, err
	}

	resp := responder.NewResponder(responder.WithLogger(logger))

	books := controller.New[*Book](be.repo, newBook,
		controller.WithResponder(resp),
		controller.WithNames("book", "books"),
	)
	api := http.NewServeMux()
	books.Register(api, "/books")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	apiRouter := router.New(api,
		router.WithLogger(logger),
		router.WithSwagger(swagger),
		router.WithResponder(resp),
		router.WithMetrics(registry, metricsNamespace),
		router.WithConfig(router.Config{
			Timeout:     cfg.HTTP.Timeout,
			CORS:        router.CORSConfig{Origins: cfg.HTTP.CORSOrigins},
			HideHeaders: []string{"Authorization", "Cookie"},
		}),
	)

	infoHandler := info.New(
		info.WithResponder(resp),
		info.WithBaseURL(cfg.Docs.BaseURL),
		info.WithUIType(uiType),
		info.WithOpenAPI(func() ([]byte, error) { return openapiSpec, nil }),
		info.WithVersion(func() any {
			return map[string]string{
				"name":    "bookshelf",
				"version": version,
				"commit":  commit,
				"store":   be.kind,
			}
		}),
		info.WithReadiness(be.checks...),
	)

	root := http.NewServeMux()
	infoHandler.Register(root, "")
	root.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	root.Handle("/", apiRouter)
	return root, nil
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.HTTP.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", "addr", s.cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return errors.Join(fmt.Errorf("http server failed: %w", err), s.close(context.Background()))
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	return errors.Join(httpServer.Shutdown(shutdownCtx), s.close(shutdownCtx))
}
