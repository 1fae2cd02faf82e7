package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "compose"

// Recorder counts behavior and factory activity on a caller-supplied
// registry. A nil *Recorder is valid and records nothing.
type Recorder struct {
	performed *prometheus.CounterVec
	bound     *prometheus.CounterVec
	created   *prometheus.CounterVec
	missed    *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		performed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "behavior",
			Name:      "performed_total",
			Help:      "Capability calls delegated to a bound behavior variant",
		}, []string{"axis", "variant"}),
		bound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "behavior",
			Name:      "bound_total",
			Help:      "Behavior variants bound to entity slots, construction included",
		}, []string{"axis", "variant"}),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "factory",
			Name:      "created_total",
			Help:      "Products built by a keyed factory",
		}, []string{"kind", "key"}),
		missed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "factory",
			Name:      "missed_total",
			Help:      "Factory lookups for keys that are not registered",
		}, []string{"kind"}),
	}

	for _, c := range []prometheus.Collector{r.performed, r.bound, r.created, r.missed} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) BehaviorPerformed(axis, variant string) {
	if r == nil {
		return
	}
	r.performed.WithLabelValues(axis, variant).Inc()
}

func (r *Recorder) BehaviorBound(axis, variant string) {
	if r == nil {
		return
	}
	r.bound.WithLabelValues(axis, variant).Inc()
}

func (r *Recorder) ProductCreated(kind, key string) {
	if r == nil {
		return
	}
	r.created.WithLabelValues(kind, key).Inc()
}

func (r *Recorder) ProductMissed(kind string) {
	if r == nil {
		return
	}
	r.missed.WithLabelValues(kind).Inc()
}
