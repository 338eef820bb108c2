package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"

	"github.com/dmitrymomot/spaserve/core/config"
	"github.com/dmitrymomot/spaserve/core/handler"
	"github.com/dmitrymomot/spaserve/core/logger"
	"github.com/dmitrymomot/spaserve/core/server"
	"github.com/dmitrymomot/spaserve/core/static"
	"github.com/dmitrymomot/spaserve/middleware"
)

type appConfig struct {
	AppName       string   `env:"APP_NAME" envDefault:"spaserve"`
	Env           string   `env:"APP_ENV" envDefault:"development"`
	LogLevel      string   `env:"LOG_LEVEL" envDefault:"info"`
	Root          string   `env:"SPASERVE_ROOT" envDefault:"."`
	RequiredFiles []string `env:"SPASERVE_REQUIRED_FILES" envDefault:"index.html"`
	PolicyFile    string   `env:"SPASERVE_POLICY_FILE" envDefault:""`
	OpenBrowser   bool     `env:"SPASERVE_OPEN_BROWSER" envDefault:"false"`
}

func main() {
	if err := run(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	var srvCfg server.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithAttr(slog.String("app", cfg.AppName)),
	}
	if cfg.Env == "production" {
		logOpts = append(logOpts, logger.WithJSONFormatter())
	}
	log := logger.New(logOpts...)

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return fmt.Errorf("resolve serving root %s: %w", cfg.Root, err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return fmt.Errorf("serving root is not a directory: %s", root)
	}

	if err := static.Preflight(root, cfg.RequiredFiles...); err != nil {
		return fmt.Errorf("preflight check failed: %w", err)
	}

	policy := static.DefaultPolicy()
	if cfg.PolicyFile != "" {
		policy, err = static.LoadPolicy(cfg.PolicyFile)
		if err != nil {
			return err
		}
	}

	responder := static.Responder(root,
		static.WithPolicy(policy),
		static.WithLogger(log),
	)

	h := handler.Chain(responder,
		middleware.RequestID(),
		middleware.LoggingWithLogger(log),
		middleware.SecurityHeaders(),
		middleware.CORS(),
	)

	errorHandler := func(ctx *handler.Context, err error) {
		// Headers are usually already on the wire by the time a write
		// fails; dropping the connection and logging is all that's left.
		log.Error("response write failed",
			logger.Path(ctx.Request().URL.Path),
			logger.Error(err),
		)
	}

	srv, err := server.NewFromConfig(srvCfg, server.WithLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	url := listenURL(srvCfg.Addr)
	printBanner(cfg.AppName, root, url, policy)

	if cfg.OpenBrowser {
		go func() {
			if err := openBrowser(url); err != nil {
				log.Warn("failed to open browser", logger.Error(err))
			}
		}()
	}

	if err := srv.Run(ctx, handler.Wrap(h, errorHandler)); err != nil {
		if errors.Is(err, server.ErrAddrInUse) {
			return fmt.Errorf("%w: stop the other server or set SERVER_ADDR to a different port", err)
		}
		return err
	}

	color.New(color.FgGreen).Printf("\nserver stopped\n")
	return nil
}

// listenURL turns a listen address into something a browser accepts:
// an empty or wildcard host becomes localhost.
func listenURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://localhost:8000"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s", net.JoinHostPort(host, port))
}
