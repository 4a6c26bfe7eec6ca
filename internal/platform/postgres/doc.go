// Package postgres provides PostgreSQL implementations of the store
// interfaces, using the pgx stdlib driver through database/sql.
// Referential integrity (cascade deletes, nulled task assignments) is
// enforced by the schema; see the migrations directory.
package postgres
