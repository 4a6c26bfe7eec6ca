// Package api exposes the HTTP surface of the server: request decoding and
// validation, the project, task, milestone, notification, and auth handlers,
// and the mapping from service errors to HTTP status codes. Handlers resolve
// the calling actor from the request context and delegate all authorization
// to the service layer.
package api
