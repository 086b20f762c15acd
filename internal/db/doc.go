// Package db opens analytics database connections and loads tabular data
// into them. It wraps database/sql over three drivers (MySQL, PostgreSQL,
// SQLite), builds driver-appropriate DSNs with credentials kept out of
// logs, and does batched transactional inserts with dialect-aware DDL.
package db
