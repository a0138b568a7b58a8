package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

// PostgrestBackend talks to a Supabase project through its REST interface.
// The client library does not take a context; deadlines are enforced by the
// WithTimeout wrapper instead.
type PostgrestBackend struct {
	client *supa.Client
}

func NewPostgrest(client *supa.Client) *PostgrestBackend {
	if client == nil {
		panic("store: nil supabase client")
	}
	return &PostgrestBackend{client: client}
}

func applyFilters(fb *postgrest.FilterBuilder, q Query) *postgrest.FilterBuilder {
	for _, f := range q.Filters {
		fb = fb.Eq(f.Column, fmt.Sprint(f.Value))
	}
	return fb
}

func (p *PostgrestBackend) Insert(_ context.Context, row Record) error {
	_, _, err := p.client.From(row.TableName()).Insert(row, false, "", "", "").Execute()
	return err
}

func (p *PostgrestBackend) Find(_ context.Context, table Record, q Query, dest interface{}) error {
	fb := applyFilters(p.client.From(table.TableName()).Select("*", "", false), q)
	for _, o := range q.Orders {
		fb = fb.Order(o.Column, &postgrest.OrderOpts{Ascending: !o.Desc})
	}
	if q.Limit > 0 {
		fb = fb.Limit(q.Limit, "")
	}
	data, _, err := fb.Execute()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (p *PostgrestBackend) First(ctx context.Context, q Query, dest Record) error {
	var rows []json.RawMessage
	if err := p.Find(ctx, dest, q.Take(1), &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return json.Unmarshal(rows[0], dest)
}

func (p *PostgrestBackend) Update(_ context.Context, table Record, q Query, values map[string]interface{}) (int64, error) {
	if len(q.Filters) == 0 {
		return 0, ErrUnscoped
	}
	fb := applyFilters(p.client.From(table.TableName()).Update(values, "representation", ""), q)
	data, _, err := fb.Execute()
	if err != nil {
		return 0, err
	}
	return countRows(data)
}

func (p *PostgrestBackend) Delete(_ context.Context, table Record, q Query) (int64, error) {
	if len(q.Filters) == 0 {
		return 0, ErrUnscoped
	}
	fb := applyFilters(p.client.From(table.TableName()).Delete("representation", ""), q)
	data, _, err := fb.Execute()
	if err != nil {
		return 0, err
	}
	return countRows(data)
}

func (p *PostgrestBackend) Ping(_ context.Context) error {
	_, _, err := p.client.From("telehealth_doctors").Select("id", "", false).Limit(1, "").Execute()
	return err
}

func countRows(data []byte) (int64, error) {
	if len(data) == 0 {
		return 0, nil
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}
