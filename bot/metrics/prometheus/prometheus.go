package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Events = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "modmail",
		Subsystem: "departments",
		Name:      "gateway_events",
	}, []string{"event_type"})

	Interactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "modmail",
		Subsystem: "departments",
		Name:      "interactions",
	}, []string{"interaction_type"})

	PromptsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "modmail",
		Subsystem: "departments",
		Name:      "prompts_sent",
	})

	TicketsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "modmail",
		Subsystem: "departments",
		Name:      "tickets_created",
	})
)

func StartServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		_ = http.ListenAndServe(addr, mux)
	}()
}
