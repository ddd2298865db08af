package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/config"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger *slog.Logger

	router    chi.Router
	httpSrv   *http.Server
	consumers []Consumer
	starters  []Starter
	closers   []Closer

	cancel context.CancelFunc
	group  *errgroup.Group
	done   <-chan struct{}
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(chimw.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &application{
		logger:  logger,
		httpSrv: httpSrv,
		router:  router,
	}
}

type HTTPHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

// Consumer читает входящие обновления до отмены контекста
type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = consumers
}

// Starter запускается один раз перед приемом обновлений
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

// Closer освобождается после остановки потребителей, например продюсер событий
type Closer interface {
	Close() error
}

func (a *application) SetClosers(closers ...Closer) {
	a.closers = closers
}

func (a *application) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	for _, s := range a.starters {
		if err := s.Start(ctx); err != nil {
			cancel()
			return fmt.Errorf("failed to run starter: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range a.consumers {
		g.Go(func() error {
			c.Consume(gctx)
			return nil
		})
	}

	g.Go(func() error {
		a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	a.cancel = cancel
	a.group = g
	a.done = gctx.Done()
	a.logger.Info("application started")
	return nil
}

// Done закрывается, когда http сервер или один из потребителей завершился с ошибкой
func (a *application) Done() <-chan struct{} {
	return a.done
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() error {
	var errs []error

	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close consumer: %w", err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	if a.cancel != nil {
		a.cancel()
	}
	if a.group != nil {
		if err := a.group.Wait(); err != nil {
			errs = append(errs, err)
		}
	}

	// продюсер закрывается последним
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close: %w", err))
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}
