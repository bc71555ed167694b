package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/driver_sync/config"
	"github.com/Gunvolt24/driver_sync/internal/cache/memory"
	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/kafka"
	"github.com/Gunvolt24/driver_sync/internal/ports"
	"github.com/Gunvolt24/driver_sync/internal/realtime"
	"github.com/Gunvolt24/driver_sync/internal/repo/postgres"
	"github.com/Gunvolt24/driver_sync/internal/session"
	"github.com/Gunvolt24/driver_sync/internal/transport/api"
	rest "github.com/Gunvolt24/driver_sync/internal/transport/http"
	"github.com/Gunvolt24/driver_sync/internal/usecase"
	"github.com/Gunvolt24/driver_sync/pkg/logger"
	"github.com/Gunvolt24/driver_sync/pkg/metrics"
	"github.com/Gunvolt24/driver_sync/pkg/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sessions — жизненный цикл сессии водителя, который нужен приложению.
type Sessions interface {
	Resume(ctx context.Context) (bool, error)
	Teardown(ctx context.Context)
}

// App — собранное приложение и его внешние интерфейсы (HTTP, сессии).
type App struct {
	Logger          ports.Logger  // логгер
	HTTPServer      *http.Server  // локальный API
	MetricsServer   *http.Server  // отдельный /metrics; nil — только на основном API
	Sessions        Sessions      // менеджер сессий
	AutoLogin       bool          // продолжить сохранённую сессию при старте
	gracefulTimeout time.Duration // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// cachePolicies — политики коллекций из конфигурации.
func cachePolicies(c config.Cache) map[domain.Collection]memory.Policy {
	return map[domain.Collection]memory.Policy{
		domain.AcceptedOrders: {TTL: c.AcceptedTTL, PreloadDelay: c.AcceptedPreload},
		domain.RecentOrders:   {TTL: c.RecentTTL, PreloadDelay: c.RecentPreload},
		domain.Shops:          {TTL: c.ShopsTTL, PreloadDelay: c.ShopsPreload},
		domain.Notifications:  {TTL: c.NotificationsTTL, PreloadDelay: c.NotificationsPreload},
	}
}

// consumerFactory — realtime-источник по конфигурации; nil — только опрос.
func consumerFactory(cfg *config.Config, log ports.Logger) (session.ConsumerFactory, error) {
	switch cfg.Realtime.Source {
	case config.RealtimeWebSocket:
		url, err := realtime.ResolveURL(cfg.Realtime.URL, cfg.API.BaseURL)
		if err != nil {
			return nil, err
		}
		return session.WebSocketConsumers(realtime.Config{
			URL:               url,
			HeartbeatInterval: cfg.Realtime.HeartbeatInterval,
			HandshakeTimeout:  cfg.Realtime.HandshakeTimeout,
			ProcessTimeout:    cfg.Realtime.ProcessTimeout,
			RetryInitial:      cfg.Realtime.RetryInitial,
			RetryMax:          cfg.Realtime.RetryMax,
			DegradedAfter:     cfg.Realtime.DegradedAfter,
			MaxAttempts:       cfg.Realtime.MaxAttempts,
		}, log), nil
	case config.RealtimeKafka:
		return session.KafkaConsumers(kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			Topic:          cfg.Kafka.Topic,
			GroupID:        cfg.Kafka.GroupID,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, log), nil
	default:
		return nil, nil
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// REST платформы доставки: чтение коллекций и команды.
	client, err := api.NewClient(api.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		RPS:       cfg.API.RPS,
		Burst:     cfg.API.Burst,
		UserAgent: cfg.API.UserAgent,
	})
	if err != nil {
		closeLogger()
		return nil, func() {}, fmt.Errorf("api client: %w", err)
	}

	consumers, err := consumerFactory(cfg, logg)
	if err != nil {
		closeLogger()
		return nil, func() {}, fmt.Errorf("realtime: %w", err)
	}

	// Снимки кэша в Postgres (необязательно); nil — тёплый старт отключён.
	var (
		snapshots ports.SnapshotRepository
		closePool = func() {}
	)
	if cfg.Postgres.Enabled && cfg.Cache.Enabled {
		pool, pErr := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if pErr != nil {
			closeLogger()
			return nil, func() {}, pErr
		}
		snapshots = postgres.NewSnapshotRepository(pool)
		closePool = pool.Close
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Менеджер сессий: на каждую сессию свои кэш, команды и realtime.
	manager := session.NewManager(client, client, snapshots, logg, session.Options{
		CacheEnabled: cfg.Cache.Enabled,
		Policies:     cachePolicies(cfg.Cache),
		Cache: usecase.CacheOptions{
			SweepInterval: cfg.Cache.SweepInterval,
			HealDelay:     cfg.Cache.HealDelay,
		},
		Consumers:              consumers,
		PrefsPath:              cfg.Session.PrefsPath,
		ClearSnapshotsOnLogout: cfg.Session.ClearSnapshotsOnLogout,
		TeardownTimeout:        cfg.Session.TeardownTimeout,
	})

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(manager, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, cfg.HTTP.StaticDir, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	var metricsSrv *http.Server
	if addr := strings.TrimSpace(cfg.Metrics.Addr); addr != "" && addr != cfg.HTTP.Addr {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout}
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		Sessions:        manager,
		AutoLogin:       cfg.Session.AutoLogin,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		closePool()
		closeLogger()
	}

	return app, cleanup, nil
}

// Run — продолжает сохранённую сессию, запускает HTTP-серверы; ждёт отмены
// контекста или ошибки, затем останавливает серверы и закрывает сессию.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	if a.AutoLogin && a.Sessions != nil {
		resumed, err := a.Sessions.Resume(ctx)
		switch {
		case err != nil:
			a.Logger.Warnf(ctx, "resume session failed: %v", err)
		case resumed:
			a.Logger.Infof(ctx, "saved session resumed")
		}
	}

	serve := func(name string, srv *http.Server) {
		a.Logger.Infof(ctx, "%s server starting (addr=%s)", name, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s server: %w", name, err)
		}
	}

	// Запуск HTTP-серверов.
	go serve("http", a.HTTPServer)
	if a.MetricsServer != nil {
		go serve("metrics", a.MetricsServer)
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case runErr = <-errCh:
		a.Logger.Errorf(ctx, "background error: %v", runErr)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-серверов.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}
	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
		}
	}

	// Остановка сессии: кэш очищается, сохранённая сессия остаётся.
	if a.Sessions != nil {
		a.Sessions.Teardown(shutdownCtx)
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
