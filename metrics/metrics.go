package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	availabilityRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shelterhub",
			Name:      "availability_requests_total",
			Help:      "Count of availability computations by outcome.",
		},
		[]string{"outcome"},
	)

	availabilitySlots = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shelterhub",
			Name:      "availability_slots_returned",
			Help:      "Distribution of slot counts returned per availability request.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)

	appointmentTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shelterhub",
			Name:      "appointment_transitions_total",
			Help:      "Count of appointment lifecycle transitions by target status.",
		},
		[]string{"status"},
	)

	holdsExpired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shelterhub",
			Name:      "appointment_holds_expired_total",
			Help:      "Count of unconfirmed appointment holds released by the worker.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(availabilityRequests, availabilitySlots, appointmentTransitions, holdsExpired)
	})
}

func IncAvailabilityRequest(outcome string) {
	availabilityRequests.WithLabelValues(outcome).Inc()
}

func ObserveSlotsReturned(count int) {
	availabilitySlots.Observe(float64(count))
}

func IncAppointmentTransition(status string) {
	appointmentTransitions.WithLabelValues(status).Inc()
}

func IncHoldExpired() {
	holdsExpired.Inc()
}
