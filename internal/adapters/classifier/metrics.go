package classifier

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
    Name: "moderation_classifier_duration_sec",
    Help: "Duration of external content classifier calls",
}, []string{"endpoint"})

var requestCount = promauto.NewCounterVec(prometheus.CounterOpts{
    Name: "moderation_classifier_count",
    Help: "Number of external content classifier calls, by endpoint and HTTP status code",
}, []string{"endpoint", "status"})

var unavailableCount = promauto.NewCounter(prometheus.CounterOpts{
    Name: "moderation_classifier_unavailable_count",
    Help: "Number of classifications that fell back to unavailable after every endpoint failed",
})
