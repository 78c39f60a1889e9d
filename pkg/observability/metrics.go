// Package observability provides ready-made instance observers: Prometheus
// counters and structured logging, both wired through the regular callback
// registry so they see exactly what any other observer sees.
package observability

import (
	"log/slog"

	"github.com/aretw0/automat/internal/runtime"
	"github.com/aretw0/automat/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for automaton activity.
type Metrics struct {
	transitions *prometheus.CounterVec
	rejections  *prometheus.CounterVec
}

// NewMetrics registers the collectors with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "automat",
			Name:      "transitions_total",
			Help:      "Executed transitions by machine, source state, input and target state.",
		}, []string{"machine", "from", "input", "to"}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "automat",
			Name:      "rejected_inputs_total",
			Help:      "Inputs rejected because they are not accepted in the current state.",
		}, []string{"machine", "state", "input"}),
	}
}

// TransitionObserver returns a callback that counts every executed
// transition. Register it with OnAnyTransition.
func (m *Metrics) TransitionObserver(machine string) runtime.TransitionCallback {
	return func(from domain.State, input domain.Input, to domain.State) {
		m.transitions.WithLabelValues(machine, string(from), string(input), string(to)).Inc()
	}
}

// Rejected counts an input rejection. Rejections never reach the callback
// registry (no callbacks fire on a rejected input), so callers record them
// explicitly.
func (m *Metrics) Rejected(machine string, state domain.State, input domain.Input) {
	m.rejections.WithLabelValues(machine, string(state), string(input)).Inc()
}

// LogObserver returns a callback that logs every executed transition at
// Info level. Register it with OnAnyTransition.
func LogObserver(logger *slog.Logger, machine string) runtime.TransitionCallback {
	return func(from domain.State, input domain.Input, to domain.State) {
		logger.Info("transition",
			"machine", machine,
			"from", from,
			"input", input,
			"to", to,
		)
	}
}
