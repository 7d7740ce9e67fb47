// Prometheus 메트릭 정의. /metrics 라우트에서 노출.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PollsTotal - 폴링 틱 수. status는 live 또는 error
	PollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soclens_polls_total",
		Help: "Alert feed poll ticks by outcome.",
	}, []string{"status"})

	// PollDuration - 폴링 한 틱의 소요 시간
	PollDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "soclens_poll_duration_seconds",
		Help:    "Time spent fetching and aggregating one poll tick.",
		Buckets: prometheus.DefBuckets,
	})

	// InvestigationsTotal - 조사 번들 요청 수
	InvestigationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soclens_investigations_total",
		Help: "Investigation bundle requests by outcome.",
	}, []string{"status"})

	// ChatTurnsTotal - 챗 턴 수
	ChatTurnsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soclens_chat_turns_total",
		Help: "Chat turns served.",
	})

	// IntelLookupsTotal - 위협 인텔 조회 수. source는 cache, api 또는 miss
	IntelLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soclens_intel_lookups_total",
		Help: "Threat intel lookups by source.",
	}, []string{"source"})
)
