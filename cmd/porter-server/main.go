package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	dispatchv1 "github.com/medportal/porter/api/gen/go/porter/dispatch/v1"
	"github.com/medportal/porter/internal/config"
	"github.com/medportal/porter/internal/domain/directory"
	"github.com/medportal/porter/internal/domain/porter"
	"github.com/medportal/porter/internal/gateway"
	"github.com/medportal/porter/internal/platform/clinical"
	"github.com/medportal/porter/internal/platform/db"
	"github.com/medportal/porter/internal/platform/eventbus"
	"github.com/medportal/porter/internal/platform/metrics"
	"github.com/medportal/porter/internal/platform/middleware"
	"github.com/medportal/porter/internal/platform/rpc"
	"github.com/medportal/porter/internal/platform/telemetry"
	"github.com/medportal/porter/migrations"
)

var version = "0.1.0"

const shutdownTimeout = 10 * time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "porter",
		Short:        "Porter dispatch service and browser gateway",
		SilenceUsage: true,
	}
	root.AddCommand(dispatchCmd())
	root.AddCommand(gatewayCmd())
	root.AddCommand(migrateCmd())
	return root
}

func newLogger(env, component string) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", component).Logger()
	if env == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Str("service", component).Logger()
	}
	return logger
}

// loadConfig loads and validates settings for role.
func loadConfig(role config.Role) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(role); err != nil {
		return nil, err
	}
	return cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func dispatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch",
		Short: "Run the dispatch gRPC service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(config.RoleDispatch)
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()
			return runDispatch(ctx, cfg, newLogger(cfg.Env, "porter-dispatch"))
		},
	}
}

func gatewayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gateway",
		Short: "Run the browser-facing HTTP gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(config.RoleGateway)
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()
			return runGateway(ctx, cfg, newLogger(cfg.Env, "porter-gateway"))
		},
	}
}

func newNameResolver(ctx context.Context, cfg *config.Config, pg *directory.PGResolver, logger zerolog.Logger) porter.NameResolver {
	if cfg.RedisURL == "" {
		return pg
	}
	rdb, err := directory.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, directory names read from postgres only")
		return pg
	}
	logger.Info().Dur("ttl", cfg.DirectoryCacheTTL).Msg("directory name cache enabled")
	return directory.NewRedisCache(rdb, pg, cfg.DirectoryCacheTTL, logger)
}

func runDispatch(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName:    "porter-dispatch",
		ServiceVersion: version,
		Environment:    cfg.Env,
		Endpoint:       cfg.OTLPEndpoint,
	})
	if err != nil {
		return err
	}
	defer shutdownTracing(context.Background())

	pool, err := db.NewPool(ctx, db.PoolConfig{
		URL:             cfg.DatabaseURL,
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		ApplicationName: "porter-dispatch",
	}, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	names := newNameResolver(ctx, cfg, directory.NewPGResolver(pool), logger)

	bus := porter.NewBus(cfg.EventBufferSize, eventbus.WithDropHandler(func(subID uint64, ev porter.Event) {
		metrics.EventsDropped.Inc()
		logger.Warn().
			Uint64("subscription", subID).
			Str("event", ev.Type.String()).
			Msg("subscriber buffer full, event dropped")
	}))
	svc := porter.NewService(porter.NewRepoPG(pool), bus, porter.NewEnricher(names), logger)

	var patients porter.PatientLookup
	if cfg.ClinicalAPIEnabled() {
		httpClient := &http.Client{Timeout: 10 * time.Second}
		tokens := clinical.NewTokenCache(cfg.ClinicalAPIAuthURL, cfg.ClinicalAPIUsername, cfg.ClinicalAPIPassword, httpClient, logger)
		patients = clinical.NewClient(cfg.ClinicalAPIBaseURL, tokens, httpClient, logger)
	} else {
		logger.Warn().Msg("clinical API not configured, patient lookups will be unavailable")
	}

	grpcSrv := rpc.NewServer(logger)
	porter.NewGRPCServer(svc, bus, patients, logger).Register(grpcSrv)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
	}

	admin := echo.New()
	admin.HideBanner = true
	admin.HidePort = true
	admin.Use(middleware.Recovery(logger))
	admin.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": version})
	})
	admin.GET("/health/db", db.HealthHandler(pool))
	admin.GET("/metrics", metrics.Handler())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", lis.Addr().String()).Msg("starting gRPC server")
		grpcSrv.SetServing()
		if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		addr := ":" + cfg.AdminPort
		logger.Info().Str("addr", addr).Msg("starting admin server")
		if err := admin.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("admin server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down dispatch service")

		// Open streams must end before GracefulStop can return.
		bus.Close()

		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		grpcSrv.Shutdown(shCtx)
		if err := admin.Shutdown(shCtx); err != nil {
			logger.Error().Err(err).Msg("admin shutdown failed")
		}
		return nil
	})

	err = g.Wait()
	logger.Info().Msg("dispatch service stopped")
	return err
}

// dialDispatch waits briefly for the dispatch service. If it is not up yet
// the gateway starts anyway; calls made while it is down fail with 503.
func dialDispatch(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*grpc.ClientConn, error) {
	logf := func(format string, args ...any) {
		logger.Debug().Msgf(format, args...)
	}
	conn, err := rpc.DialWithHealth(ctx, cfg.DispatchAddr, cfg.DialTimeout, logf)
	if err == nil {
		logger.Info().Str("addr", cfg.DispatchAddr).Msg("connected to dispatch service")
		return conn, nil
	}

	var dialErr *rpc.DialError
	if errors.As(err, &dialErr) && dialErr.Stage == rpc.DialStageConnect {
		return nil, err
	}
	logger.Warn().Err(err).Str("addr", cfg.DispatchAddr).Msg("dispatch service not healthy yet, continuing")
	return grpc.NewClient(cfg.DispatchAddr, rpc.DefaultClientDialOptions()...)
}

func newGatewayServer(cfg *config.Config, client dispatchv1.PorterServiceClient, relay *gateway.Relay, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.Metrics())
	e.Use(telemetry.TracingMiddleware(otel.GetTracerProvider()))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
	}))
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout, "/stream"))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": version})
	})
	e.GET("/metrics", metrics.Handler())

	gateway.NewHandler(client, relay, logger).RegisterRoutes(e.Group("/api/v1"))
	return e
}

func runGateway(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName:    "porter-gateway",
		ServiceVersion: version,
		Environment:    cfg.Env,
		Endpoint:       cfg.OTLPEndpoint,
	})
	if err != nil {
		return err
	}
	defer shutdownTracing(context.Background())

	conn, err := dialDispatch(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	client := dispatchv1.NewPorterServiceClient(conn)
	relay := gateway.NewRelay(client, cfg.SSEPingInterval, logger)
	e := newGatewayServer(cfg, client, relay, logger)
	e.Server.RegisterOnShutdown(relay.Shutdown)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting gateway")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("gateway server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down gateway")
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shCtx); err != nil {
			logger.Error().Err(err).Msg("gateway shutdown failed")
		}
		return nil
	})

	err = g.Wait()
	logger.Info().Msg("gateway stopped")
	return err
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	withMigrator := func(fn func(context.Context, *db.Migrator) error) error {
		cfg, err := loadConfig(config.RoleMigrate)
		if err != nil {
			return err
		}
		ctx := context.Background()
		pool, err := db.NewPool(ctx, db.PoolConfig{URL: cfg.DatabaseURL, MaxConns: 2, ApplicationName: "porter-migrate"}, zerolog.Nop())
		if err != nil {
			return err
		}
		defer pool.Close()
		return fn(ctx, db.NewMigrator(pool, migrations.FS))
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(ctx context.Context, m *db.Migrator) error {
				count, err := m.Up(ctx)
				if err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s) successfully.\n", count)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(ctx context.Context, m *db.Migrator) error {
				statuses, err := m.Status(ctx)
				if err != nil {
					return fmt.Errorf("failed to get migration status: %w", err)
				}
				printStatus(cmd.OutOrStdout(), statuses)
				return nil
			})
		},
	})
	return cmd
}
