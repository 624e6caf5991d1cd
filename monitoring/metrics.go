package monitoring

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/spf13/cast"

	"github.com/Abdul1ayev/Tickets/internal/store"
)

var (
	storeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total remote table operations",
		},
		[]string{"operation", "collection", "status"},
	)

	bookings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Total purchase attempts by outcome",
		},
		[]string{"status"},
	)

	searches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticket_searches_total",
			Help: "Total route searches executed",
		},
	)

	availableTickets = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "available_tickets_total",
			Help: "Current number of listings with remaining seats",
		},
	)

	remainingSeats = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "remaining_seats_total",
			Help: "Sum of remaining seat counts across listings",
		},
	)

	catalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of upstream catalog API requests",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"status"},
	)
)

// TrackStoreOperation records one remote table round trip.
func TrackStoreOperation(operation, collection, status string) {
	storeOperations.WithLabelValues(operation, collection, status).Inc()
}

// TrackBooking records one purchase attempt outcome.
func TrackBooking(status string) {
	bookings.WithLabelValues(status).Inc()
}

// TrackSearch records one executed route search.
func TrackSearch() {
	searches.Inc()
}

// TrackCatalogRequest records one upstream catalog call.
func TrackCatalogRequest(status string, duration time.Duration) {
	catalogRequestDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// Monitor periodically snapshots inventory gauges from the store.
type Monitor struct {
	store    store.Client
	interval time.Duration
}

func NewMonitor(client store.Client, interval time.Duration) *Monitor {
	return &Monitor{store: client, interval: interval}
}

func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.collectInventoryMetrics(ctx)
		}
	}
}

func (m *Monitor) collectInventoryMetrics(ctx context.Context) {
	rows, err := m.store.List(ctx, store.CollectionTickets)
	if err != nil {
		return
	}

	available := 0
	seats := 0
	for _, row := range rows {
		count := cast.ToInt(row["count"])
		if count > 0 {
			available++
			seats += count
		}
	}

	availableTickets.Set(float64(available))
	remainingSeats.Set(float64(seats))
}
