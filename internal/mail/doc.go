// Package mail implements asynchronous email delivery for notifications.
//
// Callers hand delivery jobs to a bounded in-memory queue and continue
// immediately. A fixed pool of workers drains the queue and sends each job
// over SMTP. Delivery is best effort: a failed send is logged and dropped,
// never retried, and never surfaces to the request that produced it.
package mail
