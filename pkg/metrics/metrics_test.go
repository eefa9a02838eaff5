package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "test")

	m.IncReservationCreated("lavages")
	m.IncReservationCreated("lavages")
	m.IncSlotConflict("detailing")
	m.SetOccupancy("tolerie", 3, 10)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationsCreated.WithLabelValues("lavages")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlotConflicts.WithLabelValues("detailing")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SlotsBookedToday.WithLabelValues("tolerie")))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.SlotsFreeToday.WithLabelValues("tolerie")))
}

func TestMetrics_QueryErrorsIgnoreNoRows(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "test")

	m.ObserveQuery("select", time.Millisecond, sql.ErrNoRows)
	m.ObserveQuery("insert", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 0.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("select")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("insert")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/stats", 200, time.Millisecond)
		m.ObserveQuery("select", time.Millisecond, nil)
		m.SetPoolStats(sql.DBStats{})
		m.IncReservationCreated("lavages")
		m.IncSlotConflict("lavages")
		m.SetOccupancy("lavages", 1, 1)
	})
}
