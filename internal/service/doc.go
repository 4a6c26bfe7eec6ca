// Package service provides application-level services for projects, tasks,
// milestones, and notifications.
//
// Every mutating or reading operation is authorized up front: the service
// consults the policy engine with the caller's role before touching any
// store. A denied decision returns ErrPolicyDenied and leaves no trace in
// the database. Task and milestone creation additionally hand the new
// entity to the notification dispatcher after the write commits.
package service
