package board_metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BoardBucketSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dispatch_board_bucket_size",
			Help: "Couriers per dispatch board bucket",
		},
		[]string{"bucket"},
	)

	BoardLinksTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_board_links_total",
			Help: "Active courier-delivery links on the dispatch board",
		},
	)
)
