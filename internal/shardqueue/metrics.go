package shardqueue

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agora_client",
			Subsystem: "shardqueue",
			Name:      "submissions_total",
			Help:      "Jobs accepted into a shard queue.",
		},
		[]string{"shard"},
	)

	queueFullTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agora_client",
			Subsystem: "shardqueue",
			Name:      "queue_full_total",
			Help:      "Submissions rejected due to back-pressure.",
		},
		[]string{"shard"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "agora_client",
			Subsystem: "shardqueue",
			Name:      "job_run_seconds",
			Help:      "Wall time of individual job runs.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"shard"},
	)

	queueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "agora_client",
			Subsystem: "shardqueue",
			Name:      "queue_depth",
			Help:      "Current number of queued jobs per shard.",
		},
		[]string{"shard"},
	)
)

func labelFor(shard int) string { return strconv.Itoa(shard) }
