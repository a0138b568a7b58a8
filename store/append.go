package store

import (
	"context"
	"errors"
	"fmt"
)

var ErrTableNotAllowed = errors.New("table not writable through this appender")

// Appender inserts rows into a single table and can do nothing else.
type Appender interface {
	Append(ctx context.Context, row Record) error
}

type appendOnly struct {
	next  Backend
	table string
}

// AppendOnly restricts next to inserts into table. Audit writers get an
// Appender instead of the backend itself.
func AppendOnly(next Backend, table string) Appender {
	return &appendOnly{next: next, table: table}
}

func (a *appendOnly) Append(ctx context.Context, row Record) error {
	if row == nil || row.TableName() != a.table {
		return fmt.Errorf("%w: %s", ErrTableNotAllowed, tableOf(row))
	}
	return a.next.Insert(ctx, row)
}

func tableOf(row Record) string {
	if row == nil {
		return "<nil>"
	}
	return row.TableName()
}
