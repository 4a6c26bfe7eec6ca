package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notificationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifications_created_total",
		Help: "Total number of in-app notification records created",
	})

	mailJobsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notification_mail_jobs_enqueued_total",
		Help: "Total number of notification emails handed to the mail queue",
	})

	dispatchSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notification_dispatch_skipped_total",
		Help: "Total number of creation events that produced no notification (no recipient)",
	})
)
