package dbx

import (
	"regexp"
)

// Dialect selects SQL flavour specifics. Queries are written with
// PostgreSQL-style $N placeholders and rewritten by Rebind.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

var dollarPlaceholder = regexp.MustCompile(`\$[0-9]+`)

// Rebind rewrites $N placeholders to the form d expects.
// Arguments must be passed in placeholder order.
func Rebind(d Dialect, query string) string {
	if d != SQLite {
		return query
	}
	return dollarPlaceholder.ReplaceAllString(query, "?")
}

// U64 maps an unsigned value onto a signed BIGINT column by keeping its
// bit pattern. FromU64 reverses it.
func U64(v uint64) int64 { return int64(v) }

func FromU64(v int64) uint64 { return uint64(v) }
