package metrics

import (
	"time"

	"github.com/ogurasousui/codex-hr-dashboard/internal/core/directory"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hrdash"

// Metrics は Directory とブックマークの計測値を保持します。
// directory.Recorder と bookmark.Recorder を実装します。
type Metrics struct {
	Registry *prometheus.Registry

	directoryLoads    *prometheus.CounterVec
	directoryDuration prometheus.Histogram
	employees         prometheus.Gauge
	bookmarks         prometheus.Gauge
	bookmarkMutations *prometheus.CounterVec
}

// New は専用レジストリに登録済みの Metrics を生成します。
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		directoryLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "directory",
			Name:      "loads_total",
			Help:      "Completed employee directory loads by outcome.",
		}, []string{"status"}),
		directoryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "directory",
			Name:      "load_duration_seconds",
			Help:      "Duration of employee directory loads.",
			Buckets:   prometheus.DefBuckets,
		}),
		employees: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "directory",
			Name:      "employees",
			Help:      "Employees in the current directory snapshot.",
		}),
		bookmarks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "bookmarks",
			Name:      "size",
			Help:      "Bookmarked employee ids.",
		}),
		bookmarkMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bookmarks",
			Name:      "mutations_total",
			Help:      "Persisted bookmark mutations by operation.",
		}, []string{"op"}),
	}

	m.Registry.MustRegister(
		m.directoryLoads,
		m.directoryDuration,
		m.employees,
		m.bookmarks,
		m.bookmarkMutations,
	)
	return m
}

// ObserveLoad は Directory の取得結果を記録します。
func (m *Metrics) ObserveLoad(status directory.Status, employees int, elapsed time.Duration) {
	m.directoryLoads.WithLabelValues(string(status)).Inc()
	m.directoryDuration.Observe(elapsed.Seconds())
	m.employees.Set(float64(employees))
}

// ObserveMutation はブックマーク集合の変更を記録します。
func (m *Metrics) ObserveMutation(op string, size int) {
	m.bookmarkMutations.WithLabelValues(op).Inc()
	m.bookmarks.Set(float64(size))
}

// SetBookmarks は起動時に復元した件数を記録します。
func (m *Metrics) SetBookmarks(size int) {
	m.bookmarks.Set(float64(size))
}
