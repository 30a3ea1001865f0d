package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dtroode/quizboard-server/internal/api/http/router"
	httpServer "github.com/dtroode/quizboard-server/internal/api/http/server"
	"github.com/dtroode/quizboard-server/internal/config"
	"github.com/dtroode/quizboard-server/internal/dao"
	"github.com/dtroode/quizboard-server/internal/logger"
	"github.com/dtroode/quizboard-server/internal/model"
	"github.com/dtroode/quizboard-server/internal/repository/memory"
	"github.com/dtroode/quizboard-server/internal/repository/sqlstore"
	"github.com/dtroode/quizboard-server/internal/server"
	"github.com/dtroode/quizboard-server/internal/service"
	storage "github.com/dtroode/quizboard-server/internal/storage/minio"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// stores groups the persistence backends selected by configuration.
type stores struct {
	results model.ResultStore
	users   model.UserStore
	pinger  model.Pinger
	close   func() error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	application, err := buildApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to build application", "error", err, "driver", cfg.Database.Driver)
	}
	defer application.stores.close()

	srv := httpServer.NewHTTPServer(application.handler, fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "driver", cfg.Database.Driver)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// app holds the wired HTTP handler and the stores it owns.
type app struct {
	handler http.Handler
	stores  *stores
}

// buildApp wires every component. Object storage is set up before the
// database is opened, so an error never leaves a database handle behind.
func buildApp(ctx context.Context, cfg *config.Config, lg *logger.Logger) (*app, error) {
	var storageClient *storage.Client
	if cfg.Storage.Enabled {
		var err error
		storageClient, err = storage.NewClient(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage client: %w", err)
		}
	}

	st, err := openStores(ctx, cfg.Database, lg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	quizService := service.NewQuiz(st.results, lg)
	userDAO := dao.New[model.User, model.UserPayload]("user", st.users, model.UserSchema{}, lg)

	opts := []router.Option{
		router.WithPinger(st.pinger),
		router.WithAllowedOrigins(cfg.HTTP.AllowedOrigins),
	}
	if storageClient != nil {
		opts = append(opts, router.WithSnapshots(service.NewSnapshot(quizService, storageClient, lg)))
	}

	return &app{
		handler: router.New(quizService, userDAO, lg, opts...).Register(),
		stores:  st,
	}, nil
}

func openStores(ctx context.Context, cfg config.Database, lg *logger.Logger) (*stores, error) {
	if cfg.Driver == "memory" {
		return &stores{
			results: memory.NewResultRepository(),
			users:   memory.NewUserRepository(),
			close:   func() error { return nil },
		}, nil
	}

	db, err := sqlstore.NewConnection(ctx, cfg.Driver, cfg.DSN, lg)
	if err != nil {
		return nil, err
	}
	return &stores{
		results: sqlstore.NewResultRepository(db),
		users:   sqlstore.NewUserRepository(db),
		pinger:  db,
		close:   db.Close,
	}, nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
