package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/travel-discover/backend/internal/middleware"
	"github.com/anonto42/travel-discover/backend/internal/router"
	"github.com/anonto42/travel-discover/backend/pkg/config"
	"github.com/anonto42/travel-discover/backend/pkg/firebase"
	"github.com/anonto42/travel-discover/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			auth, err := authMiddleware(ctx, rt)
			if err != nil {
				return err
			}

			e := echo.New()
			e.HideBanner = true
			e.Validator = validators.NewValidator()
			config.SetupMiddleware(e, rt.logger)
			router.SetupRoutes(e, rt.app, auth, rt.logger)

			addr := ":" + rt.cfg.Port
			go func() {
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					rt.logger.Error("server stopped", zap.Error(err))
					stop()
				}
			}()
			rt.logger.Info("server is running", zap.String("addr", addr), zap.String("env", rt.cfg.Env))

			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
}

// authMiddleware prefers Firebase ID tokens when credentials are configured
func authMiddleware(ctx context.Context, rt *runtime) (echo.MiddlewareFunc, error) {
	if rt.cfg.FirebaseCredentialsPath == "" {
		rt.logger.Info("using JWT authentication")
		return middleware.JWTAuthMiddleware(rt.cfg.JWTSecret), nil
	}
	fb, err := firebase.InitFirebase(ctx, rt.cfg.FirebaseCredentialsPath, rt.logger)
	if err != nil {
		return nil, err
	}
	rt.logger.Info("using Firebase authentication")
	return middleware.FirebaseAuthMiddleware(fb.AuthClient), nil
}
