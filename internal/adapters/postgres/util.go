package postgres

import (
    "strings"
    "time"
)

// nullLimit maps a non-positive limit to NULL, which Postgres reads as no limit.
func nullLimit(limit int) any {
    if limit <= 0 {
        return nil
    }
    return limit
}

func nullTime(t time.Time) any {
    if t.IsZero() {
        return nil
    }
    return t
}

// qualified prefixes every column in a comma separated list with table.
func qualified(table, columns string) string {
    cols := strings.Split(columns, ",")
    for i, c := range cols {
        cols[i] = table + "." + strings.TrimSpace(c)
    }
    return strings.Join(cols, ", ")
}
