package core

import (
	"fmt"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"
)

// Label values used by Metrics.
const (
	labelKind = "kind"
	labelOp   = "op"

	opAddVertex    = "add_vertex"
	opRemoveVertex = "remove_vertex"
	opAddEdge      = "add_edge"
	opRemoveEdge   = "remove_edge"
)

// Metrics groups the counters a Graph updates.
//
//	Merges             merge calls
//	EffectiveAdditions effective additions per merge, labelled kind=vertex|edge
//	EffectiveRemovals  effective removals per merge, labelled kind=vertex|edge
//	LocalMutations     local mutations, labelled op=add_vertex|…
//	RejectedEdges      AddEdge calls refused for an unknown endpoint
type Metrics struct {
	Merges             metrics.Counter
	EffectiveAdditions metrics.Counter
	EffectiveRemovals  metrics.Counter
	LocalMutations     metrics.Counter
	RejectedEdges      metrics.Counter
}

// NewDiscardMetrics returns Metrics that record nothing.
func NewDiscardMetrics() *Metrics {
	return &Metrics{
		Merges:             discard.NewCounter(),
		EffectiveAdditions: discard.NewCounter(),
		EffectiveRemovals:  discard.NewCounter(),
		LocalMutations:     discard.NewCounter(),
		RejectedEdges:      discard.NewCounter(),
	}
}

// NewMetrics returns Prometheus-backed Metrics registered on reg under the
// given namespace and the "lwwgraph" subsystem.
func NewMetrics(reg prom.Registerer, namespace string) (*Metrics, error) {
	merges := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Subsystem: "lwwgraph",
		Name:      "merges_total",
		Help:      "Number of merge calls",
	}, nil)
	additions := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Subsystem: "lwwgraph",
		Name:      "effective_additions_total",
		Help:      "Number of merged additions that changed resolved state",
	}, []string{labelKind})
	removals := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Subsystem: "lwwgraph",
		Name:      "effective_removals_total",
		Help:      "Number of merged removals that changed resolved state",
	}, []string{labelKind})
	mutations := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Subsystem: "lwwgraph",
		Name:      "local_mutations_total",
		Help:      "Number of local mutations",
	}, []string{labelOp})
	rejected := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Subsystem: "lwwgraph",
		Name:      "rejected_edges_total",
		Help:      "Number of local edge additions refused for an unknown endpoint",
	}, nil)

	for _, c := range []prom.Collector{merges, additions, removals, mutations, rejected} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("core: register metrics: %w", err)
		}
	}

	return &Metrics{
		Merges:             prometheus.NewCounter(merges),
		EffectiveAdditions: prometheus.NewCounter(additions),
		EffectiveRemovals:  prometheus.NewCounter(removals),
		LocalMutations:     prometheus.NewCounter(mutations),
		RejectedEdges:      prometheus.NewCounter(rejected),
	}, nil
}

func (g *Graph) countMutation(op string) {
	g.metrics.LocalMutations.With(labelOp, op).Add(1)
}
