package aptosagora

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transactionsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agora_client",
			Name:      "transactions_submitted_total",
			Help:      "Transactions accepted by the node.",
		},
	)

	transactionsFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agora_client",
			Name:      "transactions_failed_total",
			Help:      "Write operations that failed at submit or finality.",
		},
	)

	engagementsEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agora_client",
			Name:      "engagements_enqueued_total",
			Help:      "Engagement events accepted into the shard executor.",
		},
		[]string{"shard"},
	)
)
