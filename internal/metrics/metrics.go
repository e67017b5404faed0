// SPDX-License-Identifier: MIT

// Package metrics provides Prometheus metrics for the gallery service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreQueueDepth tracks the number of queued store operations,
	// including the one currently in flight. A growing value means a
	// stuck or slow write is blocking the single-writer queue.
	StoreQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gallery_store_queue_depth",
		Help: "Current number of queued store operations, including the in-flight one.",
	})

	// StoreWriteDuration observes the wall time of store operations,
	// from dequeue to durable persist.
	StoreWriteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gallery_store_write_duration_seconds",
		Help:    "Store operation latencies in seconds, from dequeue to durable persist.",
		Buckets: prometheus.DefBuckets,
	})

	// StoreOpsTotal counts completed store operations by outcome.
	StoreOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gallery_store_ops_total",
		Help: "Total number of completed store operations, by outcome (ok/error).",
	}, []string{"outcome"})

	// VideosTotal tracks the size of the persisted collection as of the
	// most recent successful store operation.
	VideosTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gallery_videos_total",
		Help: "Number of videos in the collection after the last successful store operation.",
	})
)
