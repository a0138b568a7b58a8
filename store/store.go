// Package store is the persistence boundary: table-scoped create, read,
// update and delete with an equality-filter query model. It has a gorm
// implementation (MySQL, SQLite) and a PostgREST implementation (Supabase).
package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrTimeout  = errors.New("persistence call timed out")
	ErrUnscoped = errors.New("refusing to update or delete without a filter")
)

// Record is a typed row that knows its table.
type Record interface {
	TableName() string
}

// Filter is an equality condition column = value.
type Filter struct {
	Column string
	Value  interface{}
}

type Order struct {
	Column string
	Desc   bool
}

// Query is a conjunction of equality filters with optional ordering and limit.
type Query struct {
	Filters []Filter
	Orders  []Order
	Limit   int
}

func Eq(column string, value interface{}) Filter {
	return Filter{Column: column, Value: value}
}

// Where starts a query from filters. Where() with no filters selects everything.
func Where(filters ...Filter) Query {
	return Query{Filters: filters}
}

func (q Query) OrderBy(column string) Query {
	q.Orders = append(append([]Order(nil), q.Orders...), Order{Column: column})
	return q
}

func (q Query) OrderByDesc(column string) Query {
	q.Orders = append(append([]Order(nil), q.Orders...), Order{Column: column, Desc: true})
	return q
}

func (q Query) Take(n int) Query {
	q.Limit = n
	return q
}

// Backend is implemented by every persistence driver.
type Backend interface {
	Insert(ctx context.Context, row Record) error
	// Find loads every row of table matching q into dest, a pointer to a slice.
	Find(ctx context.Context, table Record, q Query, dest interface{}) error
	// First loads the first matching row into dest or returns ErrNotFound.
	First(ctx context.Context, q Query, dest Record) error
	Update(ctx context.Context, table Record, q Query, values map[string]interface{}) (int64, error)
	Delete(ctx context.Context, table Record, q Query) (int64, error)
	Ping(ctx context.Context) error
}

// Backends pairs the user scoped backend with the elevated one. Service may
// bypass row level security and is only handed to the admin capability.
type Backends struct {
	User    Backend
	Service Backend
}

// Wrap applies mw to both backends.
func (b Backends) Wrap(mw func(Backend) Backend) Backends {
	return Backends{User: mw(b.User), Service: mw(b.Service)}
}
