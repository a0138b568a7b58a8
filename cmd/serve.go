package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariebrainware/healthghar/config"
	"github.com/ariebrainware/healthghar/middleware"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"github.com/ariebrainware/healthghar/util"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func serveCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Run migrations before serving (gorm drivers only)")
	return cmd
}

func runServe(ctx context.Context, migrate bool) error {
	cfg := config.LoadConfig()
	util.InitLogger(cfg.LogLevel, cfg.AppEnv)
	log := util.Component("server")
	util.SetJWTSecret(cfg.JWTSecret)

	backends, db, err := openBackends(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	if migrate && db != nil {
		if err := model.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if _, err := config.ConnectRedis(); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, using in-process fallbacks")
	}
	if err := util.InitGeoIP(cfg.GeoIPDBPath); err != nil {
		log.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("geoip disabled")
	}
	defer util.CloseGeoIP()

	util.SetSecurityLogStore(store.AppendOnly(backends.Service, model.SecurityLog{}.TableName()))
	go util.SubscribeRevalidations(ctx)

	gin.SetMode(cfg.GinMode)
	svc := middleware.NewServices(backends, middleware.Options{
		WizardTTL:      cfg.WizardTTL,
		ConflictPolicy: cfg.ConflictPolicy,
		DeletePolicy:   cfg.DoctorDeletePolicy,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           NewRouter(svc, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("driver", cfg.DBDriver).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
