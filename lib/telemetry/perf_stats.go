package telemetry

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

var perfMeter = otel.Meter("go.perf_stats")

// InstrumentPerfStats samples process health every 30 seconds until
// the context ends: cpu usage, allocated memory, live object count and
// goroutine count.
func InstrumentPerfStats(ctx context.Context) {
	cpuGauge, _ := perfMeter.Float64Gauge("cpu_usage")
	memoryGauge, _ := perfMeter.Int64Gauge("allocated_mb")
	liveObjectsGauge, _ := perfMeter.Int64Gauge("live_objects")
	goroutineGauge, _ := perfMeter.Int64Gauge("goroutine_count")

	go func() {
		ticker := time.NewTicker(time.Second * 30)
		defer ticker.Stop()

		var memStats runtime.MemStats
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			runtime.ReadMemStats(&memStats)
			memoryGauge.Record(ctx, int64(memStats.Alloc/1_000_000))
			liveObjectsGauge.Record(ctx, int64(memStats.Mallocs)-int64(memStats.Frees))
			goroutineGauge.Record(ctx, int64(runtime.NumGoroutine()))

			usage, err := cpu.Percent(time.Minute, false)
			if err != nil {
				slog.Warn("failed to read cpu usage", "err", err)
				continue
			}
			cpuGauge.Record(ctx, usage[0])
		}
	}()
}
