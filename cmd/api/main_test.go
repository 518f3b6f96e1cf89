package main

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Behyna/sms-relay/internal/config"
	"github.com/Behyna/sms-relay/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type recordingSyncer struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingSyncer) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "write:"+string(p))
	return len(p), nil
}

func (r *recordingSyncer) Sync() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "sync")
	return nil
}

func TestShutdown_SyncsLoggerLast(t *testing.T) {
	out := &recordingSyncer{}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), out, zapcore.InfoLevel)
	logger := zap.New(core)

	m := metrics.NewMetrics(prometheus.NewRegistry())
	collector := metrics.NewSystemCollector(m, logger)
	cfg := &config.Config{Metrics: config.Metrics{Enable: true}}
	collector.Start(time.Hour, "test", "abc", "2026-01-01")

	_ = shutdown(context.Background(), fiber.New(), collector, cfg, logger)

	require.NotEmpty(t, out.events)
	assert.Equal(t, "sync", out.events[len(out.events)-1])

	stopped := -1
	for i, event := range out.events {
		if strings.Contains(event, "SMS relay stopped") {
			stopped = i
		}
	}
	require.NotEqual(t, -1, stopped)
	assert.Less(t, stopped, len(out.events)-1)
}
