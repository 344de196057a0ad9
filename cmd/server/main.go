package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rhyrak/campus-sim/internal/platform/config"
	"github.com/rhyrak/campus-sim/internal/storage/sqlite"
)

type Config struct {
	Addr    string `env:"CAMPUS_HTTP_ADDR" envDefault:":3001"`
	DBPath  string `env:"CAMPUS_DB_PATH" envDefault:"campus.db"`
	Verbose bool   `env:"CAMPUS_VERBOSE"`
}

func parseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite run archive")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Log simulation detail")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	logger := config.NewLogger(os.Stderr, cfg.Verbose)

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		config.Exitf("open store: %v", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: cfg.Addr, Handler: newRouter(store, logger)}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", cfg.Addr, "db", cfg.DBPath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("serve", "error", err)
		stop()
		store.Close()
		os.Exit(1)
	}
}

func newRouter(store *sqlite.Store, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors)

	h := &handlers{store: store, logger: logger}
	r.GET("/tracks", h.getTracks)
	r.GET("/plan/:track", h.getPlan)
	r.GET("/plan/:track/csv", h.getPlanCSV)
	r.GET("/runs", h.getRuns)
	r.GET("/runs/:id", h.getRun)
	r.POST("/runs", h.postRun)
	return r
}

func cors(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	c.Next()
}
