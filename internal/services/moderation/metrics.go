package moderation

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var verdictCount = promauto.NewCounterVec(prometheus.CounterOpts{
    Name: "moderation_verdict_count",
    Help: "Number of moderation verdicts, by outcome and reason source",
}, []string{"outcome", "source"})

var verdictConfidence = promauto.NewHistogram(prometheus.HistogramOpts{
    Name:    "moderation_verdict_confidence",
    Help:    "Combined confidence of moderation verdicts",
    Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
})

var confirmCount = promauto.NewCounterVec(prometheus.CounterOpts{
    Name: "moderation_quarantine_resolved_count",
    Help: "Number of quarantined submissions resolved by the submitter, by decision",
}, []string{"decision"})

var autoBanCount = promauto.NewCounter(prometheus.CounterOpts{
    Name: "moderation_auto_ban_count",
    Help: "Number of authors banned by spam escalation",
})
