// Package metrics holds the Prometheus collectors of the reservation gateway.
// All helpers are safe to call on a nil *Metrics, which disables collection.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "washbooking"

// Metrics коллекторы сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec
	DBWaitCount     prometheus.Gauge

	ReservationsCreated *prometheus.CounterVec
	SlotConflicts       *prometheus.CounterVec
	SlotsBookedToday    *prometheus.GaugeVec
	SlotsFreeToday      *prometheus.GaugeVec
}

// New registers the collectors on the default Prometheus registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry registers the collectors on reg; tests pass a fresh registry
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"app": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by operation",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "db_query_errors_total",
			Help:        "Database query errors by operation",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_connections",
			Help:        "Connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),

		DBWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		ReservationsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "reservations_created_total",
			Help:        "Reservations created by service kind",
			ConstLabels: constLabels,
		}, []string{"service"}),

		SlotConflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "slot_conflicts_total",
			Help:        "Reservation attempts rejected because the slot was taken",
			ConstLabels: constLabels,
		}, []string{"service"}),

		SlotsBookedToday: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "slots_booked_today",
			Help:        "Booked slots in today's grid",
			ConstLabels: constLabels,
		}, []string{"service"}),

		SlotsFreeToday: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "slots_free_today",
			Help:        "Free slots in today's grid",
			ConstLabels: constLabels,
		}, []string{"service"}),
	}
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveQuery records one database call
func (m *Metrics) ObserveQuery(operation string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(d.Seconds())
	if err != nil && err != sql.ErrNoRows {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetPoolStats exports connection pool statistics
func (m *Metrics) SetPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.DBConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.DBConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	m.DBWaitCount.Set(float64(stats.WaitCount))
}

func (m *Metrics) IncReservationCreated(service string) {
	if m == nil {
		return
	}
	m.ReservationsCreated.WithLabelValues(service).Inc()
}

func (m *Metrics) IncSlotConflict(service string) {
	if m == nil {
		return
	}
	m.SlotConflicts.WithLabelValues(service).Inc()
}

// SetOccupancy exports today's booked and free slot counts of a service kind
func (m *Metrics) SetOccupancy(service string, booked, free int) {
	if m == nil {
		return
	}
	m.SlotsBookedToday.WithLabelValues(service).Set(float64(booked))
	m.SlotsFreeToday.WithLabelValues(service).Set(float64(free))
}
