package metrics

import (
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"net/http"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	ScreenOperationsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_screen_operations_total",
			Help: "Total number of state-changing operations per screen.",
		},
		[]string{"route", "operation"},
	)
	ScreenMountsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_screen_mounts_total",
			Help: "Total number of mounted screens.",
		},
		[]string{"route"},
	)
	ChatRepliesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bot_chat_replies_total",
			Help: "Total number of delivered assistant replies.",
		},
	)
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bot_active_sessions",
			Help: "Number of users with a mounted screen.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(ScreenOperationsCounter)
	prometheus.MustRegister(ScreenMountsCounter)
	prometheus.MustRegister(ChatRepliesCounter)
	prometheus.MustRegister(ActiveSessions)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
	log.Infof("metrics server listening on :%d", port)
}
