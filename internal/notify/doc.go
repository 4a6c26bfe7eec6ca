// Package notify turns domain events into user-facing notifications.
//
// The dispatcher runs synchronously inside the request that created a task
// or milestone, after the entity has been persisted. It writes an in-app
// notification record and hands a mirror email to the mail queue. The two
// outcomes are independent: a failure in either is logged and absorbed, and
// never affects the already-committed entity or the request's response.
package notify
