package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBackend runs queries through gorm. Table names come from the records.
type GormBackend struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormBackend {
	if db == nil {
		panic("store: nil gorm.DB")
	}
	return &GormBackend{db: db}
}

// DB exposes the underlying handle for migrations and seeding.
func (g *GormBackend) DB() *gorm.DB {
	return g.db
}

func (g *GormBackend) scoped(ctx context.Context, tx *gorm.DB, q Query) *gorm.DB {
	tx = tx.WithContext(ctx)
	for _, f := range q.Filters {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: f.Column}, Value: f.Value})
	}
	for _, o := range q.Orders {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	return tx
}

func (g *GormBackend) Insert(ctx context.Context, row Record) error {
	return g.db.WithContext(ctx).Create(row).Error
}

func (g *GormBackend) Find(ctx context.Context, table Record, q Query, dest interface{}) error {
	return g.scoped(ctx, g.db.Table(table.TableName()), q).Find(dest).Error
}

func (g *GormBackend) First(ctx context.Context, q Query, dest Record) error {
	err := g.scoped(ctx, g.db.Table(dest.TableName()), q).Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (g *GormBackend) Update(ctx context.Context, table Record, q Query, values map[string]interface{}) (int64, error) {
	if len(q.Filters) == 0 {
		return 0, ErrUnscoped
	}
	res := g.scoped(ctx, g.db.Model(table), q).Updates(values)
	return res.RowsAffected, res.Error
}

func (g *GormBackend) Delete(ctx context.Context, table Record, q Query) (int64, error) {
	if len(q.Filters) == 0 {
		return 0, ErrUnscoped
	}
	res := g.scoped(ctx, g.db, q).Delete(table)
	return res.RowsAffected, res.Error
}

func (g *GormBackend) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
