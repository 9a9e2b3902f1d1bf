package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Cyclone1070/foliosh/internal/command"
	"github.com/Cyclone1070/foliosh/internal/config"
	"github.com/Cyclone1070/foliosh/internal/content"
	"github.com/Cyclone1070/foliosh/internal/logging"
	"github.com/Cyclone1070/foliosh/internal/metrics"
	"github.com/Cyclone1070/foliosh/internal/session"
	"github.com/Cyclone1070/foliosh/internal/vfs"
)

// options are the persistent command line flags.
type options struct {
	configPath  string
	profilePath string
	logLevel    string
	metricsAddr string
}

// app holds the components shared by every subcommand.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	profile *content.Profile
	root    *vfs.Node
}

// newApp loads configuration and content and wires the logger and metrics.
func newApp(opts *options) (*app, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Output: cfg.Log.Output})
	if err != nil {
		return nil, err
	}
	logging.Set(logger)

	profile, err := loadProfile(cfg.Shell.ProfilePath)
	if err != nil {
		return nil, err
	}
	root, err := content.BuildTree(profile)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	m.SetTreeNodes(countNodes(root))

	logger.Info("content loaded",
		zap.String("profile", profileSource(cfg.Shell.ProfilePath)),
		zap.Int("experience", len(profile.Experience)),
		zap.Int("projects", len(profile.Projects)),
	)

	return &app{cfg: cfg, logger: logger, metrics: m, profile: profile, root: root}, nil
}

func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.NewLoader().LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Flags win over the config file.
	if opts.profilePath != "" {
		cfg.Shell.ProfilePath = opts.profilePath
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.metricsAddr != "" {
		cfg.Metrics.Addr = opts.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadProfile(path string) (*content.Profile, error) {
	if path == "" {
		return content.Default()
	}
	return content.Load(path)
}

func profileSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// newSession starts a session with the configured identity and limits.
func (a *app) newSession() (*session.Session, error) {
	executor := command.New(command.Options{
		Identity: command.Identity{
			User:     a.cfg.Shell.Username,
			Host:     a.cfg.Shell.Hostname,
			Owner:    a.profile.Name,
			Title:    a.profile.Title,
			Location: a.profile.Location,
		},
		Logger:   a.logger,
		Recorder: a.metrics,
	})
	return session.New(a.root, executor,
		session.WithHome(a.cfg.Shell.HomePath),
		session.WithLimits(a.cfg.Shell.HistorySize, a.cfg.Shell.MaxOutputLines),
		session.WithLogger(a.logger),
		session.WithRecorder(a.metrics),
	)
}

// serveMetrics exposes /metrics when an address is configured. The returned
// function shuts the server down.
func (a *app) serveMetrics() func() {
	addr := a.cfg.Metrics.Addr
	if addr == "" {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		a.logger.Info("serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func (a *app) close() {
	_ = a.logger.Sync()
}

func countNodes(n *vfs.Node) int {
	count := 1
	for _, child := range n.Children() {
		count += countNodes(child)
	}
	return count
}
