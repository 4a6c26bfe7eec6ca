package mail

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mailSendTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mail_send_total",
		Help: "Total number of notification emails delivered successfully",
	})

	mailSendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mail_send_failures_total",
		Help: "Total number of notification emails that failed to send and were dropped",
	})

	mailEnqueueRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mail_enqueue_rejected_total",
		Help: "Total number of mail jobs rejected because the queue was full or closed",
	})
)
