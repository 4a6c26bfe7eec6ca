// Package domain contains the core business entities of the application:
// users with their roles, projects, tasks, milestones, and notifications.
// It represents the heart of the system, independent of any specific
// infrastructure or delivery mechanism. Entities validate themselves;
// persistence and authorization policy live elsewhere.
package domain
