// Package observability экспортирует метрики Prometheus сервиса.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitcoach",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route pattern, method and status code.",
	}, []string{"route", "method", "code"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fitcoach",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
	rateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitcoach",
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the per-IP rate limiter.",
	})
	cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitcoach",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Redis cache lookups by result (hit, miss, error).",
	}, []string{"result"})
	notifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitcoach",
		Subsystem: "notify",
		Name:      "notifications_total",
		Help:      "Push notifications handed to a sink by sink and outcome.",
	}, []string{"sink", "outcome"})
	registeredDevices = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitcoach",
		Subsystem: "ios",
		Name:      "registered_devices",
		Help:      "Active device registrations.",
	})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, rateLimited, cacheLookups, notifications, registeredDevices)
}

// RecordRequest учитывает завершённый HTTP-запрос.
func RecordRequest(route, method string, code int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// RecordRateLimited учитывает отклонённый ограничителем запрос.
func RecordRateLimited() {
	rateLimited.Inc()
}

// RecordCacheLookup учитывает обращение к кэшу: hit, miss или error.
func RecordCacheLookup(result string) {
	cacheLookups.WithLabelValues(result).Inc()
}

// RecordNotification учитывает попытку доставки уведомления.
func RecordNotification(sink string, err error) {
	outcome := "sent"
	if err != nil {
		outcome = "failed"
	}
	notifications.WithLabelValues(sink, outcome).Inc()
}

// SetRegisteredDevices выставляет число активных регистраций устройств.
func SetRegisteredDevices(n int) {
	registeredDevices.Set(float64(n))
}
