package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics aggregates the service counters. A single instance is registered
// in main and shared by the services; tests build one on a fresh registry.
type Metrics struct {
	ChatsResolved      *prometheus.CounterVec
	ChatCreateFailures prometheus.Counter
	ProfileLoads       *prometheus.CounterVec
	PhotoFetches       *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ChatsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eight_chats_resolved_total",
			Help: "Private chat resolutions, by outcome (found or created).",
		}, []string{"outcome"}),
		ChatCreateFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eight_chat_create_failures_total",
			Help: "Chat creation writes that failed.",
		}),
		ProfileLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eight_profile_loads_total",
			Help: "User profile reads, by outcome.",
		}, []string{"outcome"}),
		PhotoFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eight_photo_fetches_total",
			Help: "Profile photo fetches, by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.ChatsResolved, m.ChatCreateFailures, m.ProfileLoads, m.PhotoFetches)
	return m
}
