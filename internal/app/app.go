package app

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/scratchcard/internal/config"
	"github.com/vancomm/scratchcard/internal/middleware"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	logger   *slog.Logger
	router   *http.ServeMux
	card     *config.Card
	ws       *config.WebSocket
	assets   fs.FS
	basePath string
}

func New(logger *slog.Logger, assets fs.FS) (*App, error) {
	card, err := config.NewCard()
	if err != nil {
		return nil, err
	}

	ws, err := config.NewWebSocket()
	if err != nil {
		return nil, err
	}

	app := &App{
		logger:   logger,
		router:   http.NewServeMux(),
		card:     card,
		ws:       ws,
		assets:   assets,
		basePath: config.BasePath(),
	}

	app.loadRoutes()

	return app, nil
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Cors(),
		middleware.Logging(a.logger),
		middleware.Recover(a.logger),
	)
}

// Start serves until ctx is cancelled, then shuts the server down gracefully.
func (a *App) Start(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.Info(
		"scratch card online",
		slog.String("addr", addr),
		slog.String("base path", a.basePath),
		slog.String("defaults", a.card.Defaults.String()),
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
