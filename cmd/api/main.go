package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "ngo-backoffice/internal/adapter/http"
	appmw "ngo-backoffice/internal/adapter/middleware"
	"ngo-backoffice/internal/adapter/repository/gormstore"
	"ngo-backoffice/internal/config"
	"ngo-backoffice/internal/infrastructure/cache"
	"ngo-backoffice/internal/infrastructure/db"
	applog "ngo-backoffice/internal/log"
	"ngo-backoffice/internal/usecase/auth"
	budgetuc "ngo-backoffice/internal/usecase/budget"
	donoruc "ngo-backoffice/internal/usecase/donor"
	expenseuc "ngo-backoffice/internal/usecase/expense"
	projectuc "ngo-backoffice/internal/usecase/project"
	"ngo-backoffice/internal/usecase/reconcile"
	reportuc "ngo-backoffice/internal/usecase/report"
	useruc "ngo-backoffice/internal/usecase/user"
	"ngo-backoffice/pkg/media"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := applog.New(applog.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	slog.SetDefault(logger)
	appLog := applog.Component(logger, applog.ComponentApp)

	if err := cfg.Validate(); err != nil {
		appLog.Error("invalid configuration", applog.Err(err))
		os.Exit(1)
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		appLog.Error("database connection failed", "driver", cfg.DBDriver, applog.Err(err))
		os.Exit(1)
	}
	if err := db.Migrate(gdb); err != nil {
		appLog.Error("migration failed", applog.Err(err))
		os.Exit(1)
	}

	var uowOpts []gormstore.UoWOption
	if cfg.DBDriver != config.DriverSQLite {
		level, _ := cfg.Isolation() // checked by Validate
		uowOpts = append(uowOpts, gormstore.WithIsolation(level))
	}
	tx := gormstore.NewGormUoW(gdb, uowOpts...)

	rdb, err := cache.Open(cfg)
	if err != nil {
		appLog.Error("redis connection failed", "addr", cfg.RedisAddr, applog.Err(err))
		os.Exit(1)
	}
	var idem echo.MiddlewareFunc
	if rdb != nil {
		defer rdb.Close()
		idem = appmw.Idempotency(rdb, cfg.IdempotencyTTL(), logger)
	} else {
		appLog.Warn("REDIS_ADDR not set, idempotency keys are ignored")
	}

	urls := media.NewNormalizer(cfg.PublicBaseURL)
	users := gormstore.NewUserRepository(gdb)
	projects := gormstore.NewProjectRepository(gdb)
	rc := reconcile.New(tx, logger)
	authUC := auth.NewUsecase(users, cfg.JWTSecret, cfg.JWTTTL)

	handlers := httpadp.Handlers{
		Health:   httpadp.NewHandler(),
		Auth:     httpadp.NewAuthHandler(authUC),
		Users:    httpadp.NewUserHandler(useruc.NewUsecase(users)),
		Projects: httpadp.NewProjectHandler(projectuc.NewUsecase(projects, tx), rc),
		Budgets:  httpadp.NewBudgetHandler(budgetuc.NewUsecase(gormstore.NewBudgetRepository(gdb), projects)),
		Expenses: httpadp.NewExpenseHandler(expenseuc.NewUsecase(gormstore.NewExpenseRepository(gdb), tx, rc, urls, logger)),
		Donors:   httpadp.NewDonorHandler(donoruc.NewUsecase(gormstore.NewDonorRepository(gdb), tx)),
		Reports:  httpadp.NewReportHandler(reportuc.NewUsecase(gormstore.NewReportRepository(gdb), projects, urls)),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		middleware.Recover(),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
		requestLogger(applog.Component(logger, applog.ComponentHTTP)),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.CORSAllowOrigins,
			AllowHeaders: []string{
				echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization,
				appmw.HeaderIdempotencyKey, appmw.HeaderRequestAt,
			},
		}),
	)
	httpadp.RegisterRoutes(e, handlers, authUC, idem)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	go func() {
		appLog.Info("listening", "addr", addr, "driver", cfg.DBDriver)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Error("server stopped", applog.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLog.Error("graceful shutdown failed", applog.Err(err))
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	appLog.Info("shutdown complete")
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				applog.FieldRequestID, v.RequestID,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request", append(attrs, applog.Err(v.Error))...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
