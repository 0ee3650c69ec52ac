package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	greekutils "github.com/mkarajohn/greek-text-utils"
	"github.com/mkarajohn/greek-text-utils/internal/health"
	"github.com/mkarajohn/greek-text-utils/internal/logger"
	"github.com/mkarajohn/greek-text-utils/internal/web"
	"github.com/mkarajohn/greek-text-utils/internal/web/middleware"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("greekutils-web")
	var (
		port           = fs.IntLong("port", 3000, "HTTP server port")
		healthPort     = fs.IntLong("health-port", 3001, "health check server port")
		allowedOrigins = fs.StringLong("allowed-origins", "", "Comma-separated list of allowed CORS origins")
		rateLimit      = fs.IntLong("rate-limit", 120, "convert requests per minute per IP")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("GREEKUTILS")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		if errors.Is(err, ff.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parsing flags: %w", err)
	}
	if *rateLimit <= 0 {
		return errors.New("rate-limit must be positive")
	}

	log := logger.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	origins := lo.Compact(lo.Map(strings.Split(*allowedOrigins, ","), func(o string, _ int) string {
		return strings.TrimSpace(o)
	}))

	limiter := middleware.NewRateLimiter(ctx, *rateLimit, time.Minute)
	router := web.NewRouter(log, limiter, origins)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           router.Handler(),
		BaseContext:       func(net.Listener) context.Context { return ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	healthServer := health.New(*healthPort, selfTest)

	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		log.InfoContext(ctx, "starting web server", "port", *port, "origins", origins)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		log.InfoContext(ctx, "starting health server", "port", *healthPort)
		return healthServer.Start()
	})

	eg.Go(func() error {
		<-egctx.Done()
		log.Info("shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return errors.Join(server.Shutdown(shutdownCtx), healthServer.Shutdown(shutdownCtx))
	})

	return eg.Wait()
}

// selfTest fails when the conversion tables produce unexpected output.
func selfTest(context.Context) error {
	if got := greekutils.ToISO843Type2("Αθήνα"); got != "Athina" {
		return fmt.Errorf("self test: got %q", got)
	}
	return nil
}
