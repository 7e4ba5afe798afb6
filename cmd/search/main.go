package main

import (
	"context"
	"time"

	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/internal/handlers"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/internal/livemetrics"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/internal/synth"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/cache"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/clients"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/config"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/logging"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/monitoring"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/redis"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/server"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/version"
)

func main() {
	logger := logging.NewLoggerWithService("search")
	config.LoadEnv(logger)

	port := config.GetEnv("PORT", "18040")

	var delay *synth.DelaySimulator
	if config.GetEnvBool("SIMULATE_LATENCY", true) {
		delay = synth.NewDelaySimulator(synth.SharedRand(), config.GetEnvFloat("LATENCY_SCALE", 1))
	}
	synthesizer := synth.New(synth.Options{
		Delay:       delay,
		StrictTypes: config.GetEnvBool("STRICT_RESULT_TYPES", false),
	})

	healthChecker := monitoring.NewHealthChecker("search", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("search", version.Version, version.GitCommit)

	healthChecker.AddCheck("synthesizer", func() monitoring.CheckResult {
		if len(synth.GenerateWeb("health check")) == 0 {
			return monitoring.CheckResult{Status: monitoring.StatusUnhealthy, Message: "web generator returned no records"}
		}
		return monitoring.CheckResult{Status: monitoring.StatusHealthy, Message: "generators ready"}
	})

	searchMetrics := &handlers.SearchMetrics{
		Requests:          metricsCollector.NewCounter("requests_total", "Search API requests by endpoint and outcome", []string{"endpoint", "status"}),
		Results:           metricsCollector.NewCounter("results_total", "Synthesized records by result type", []string{"result_type"}),
		SynthesisDuration: metricsCollector.NewHistogram("synthesis_duration_seconds", "Time spent synthesizing a response, simulated latency included",
			[]string{"result_type"}, []float64{.05, .25, .5, 1, 1.5, 2, 3, 5}),
	}

	cacheOps := metricsCollector.NewCounter("live_metrics_cache_total", "Live metrics cache lookups by outcome", []string{"outcome"})
	hooks := cache.MetricsHooks{
		OnHit:   func(string) { cacheOps.WithLabelValues("hit").Inc() },
		OnMiss:  func(string) { cacheOps.WithLabelValues("miss").Inc() },
		OnStore: func(string) { cacheOps.WithLabelValues("store").Inc() },
		OnError: func(string) { cacheOps.WithLabelValues("error").Inc() },
	}

	var store livemetrics.Store = livemetrics.NewMemoryStore()
	if redisURL := config.GetEnv("REDIS_URL", ""); redisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := redis.NewClientFromURL(ctx, redisURL)
		cancel()
		if err != nil {
			logger.WithError(err).Warn("Redis unavailable, live metrics will be kept in memory")
		} else {
			defer client.Close()
			redisStore := livemetrics.NewRedisStore(client, config.GetEnv("LIVE_METRICS_KEY", ""))
			breakerConfig := clients.DefaultCircuitBreakerConfig()
			breakerConfig.Name = "live-metrics-redis"
			breakerConfig.Timeout = config.GetEnvDuration("REDIS_BREAKER_TIMEOUT", 10*time.Second)
			breakerConfig.MinRequests = uint32(config.GetEnvInt("REDIS_BREAKER_MIN_REQUESTS", 4))
			breakerConfig.Logger = logger
			breaker := clients.NewCircuitBreaker(breakerConfig)
			guarded := livemetrics.NewGuardedStore(redisStore, breaker, logger)
			store = guarded
			healthChecker.AddCheck("redis", monitoring.DegradedWhen(monitoring.PingHealthCheck("redis", redisStore)))
			healthChecker.AddCheck("redis_breaker", func() monitoring.CheckResult {
				if !guarded.Healthy() {
					return monitoring.CheckResult{Status: monitoring.StatusDegraded, Message: "breaker " + breaker.State().String() + ", serving live metrics from memory"}
				}
				return monitoring.CheckResult{Status: monitoring.StatusHealthy, Message: "breaker closed"}
			})
			logger.Info("Live metrics shared through Redis")
		}
	}

	liveGauge := metricsCollector.NewGauge("live", "Latest live metrics snapshot served to the landing page", []string{"metric"})
	live := livemetrics.NewService(livemetrics.Options{
		Store:     store,
		Tick:      config.GetEnvDuration("LIVE_METRICS_TICK", livemetrics.DefaultTick),
		Hooks:     hooks,
		OnAdvance: func(s livemetrics.Snapshot) {
			liveGauge.WithLabelValues("active_automations").Set(float64(s.ActiveAutomations))
			liveGauge.WithLabelValues("success_rate").Set(s.SuccessRate)
			liveGauge.WithLabelValues("avg_response_time").Set(s.AvgResponseTime)
			liveGauge.WithLabelValues("tasks_completed").Set(float64(s.TasksCompleted))
		},
	})

	app := server.SetupServiceRouter(logger, "search", healthChecker, metricsCollector)

	searchHandler := handlers.NewSearchHandler(synthesizer, logger, searchMetrics)
	automationHandler := handlers.NewAutomationHandler(synthesizer, logger, searchMetrics)
	liveHandler := handlers.NewLiveMetricsHandler(live, logger)

	app.POST("/api/search", searchHandler.Handle)
	app.POST("/api/automation", automationHandler.Handle)
	app.GET("/api/metrics/live", liveHandler.Handle)

	serverConfig := server.DefaultConfig("search", port)
	if err := server.Start(serverConfig, app, logger); err != nil {
		logger.Fatal(err.Error())
	}
}
