package mail

import "context"

// Subject is the subject line used for every notification email.
const Subject = "New Notification"

// Job is a single email delivery request.
type Job struct {
	// To is the recipient email address.
	To string

	// Body is the plain message text, identical to the in-app
	// notification message it mirrors.
	Body string
}

// Transport sends a single email. Implementations must be safe for
// concurrent use; the worker pool calls Send from multiple goroutines.
type Transport interface {
	Send(ctx context.Context, to, subject, body string) error
}
