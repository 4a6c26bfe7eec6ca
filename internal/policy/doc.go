// Package policy implements the authorization decision engine. It maps a
// caller's role and the requested action on a resource family to an
// allow/deny verdict. Decisions are pure functions of their inputs: the
// engine holds no state, touches no store, and is consulted before any
// mutation is attempted.
package policy
