// Package storetest builds throwaway backends for tests.
package storetest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seq int64

// NewSQLite returns a gorm backend over a private in-memory SQLite database
// with every table migrated.
func NewSQLite(tb testing.TB) *store.GormBackend {
	tb.Helper()
	dsn := fmt.Sprintf("file:storetest_%d?mode=memory&cache=shared", atomic.AddInt64(&seq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	// One connection serializes concurrent writers the way a real server would queue them.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := model.Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return store.NewGorm(db)
}

// Faulty wraps a backend and fails selected calls. Fail is keyed by
// "op:table" (for example "delete:telehealth_slots") or by op alone.
type Faulty struct {
	store.Backend
	Fail map[string]error
}

func (f *Faulty) fault(op, table string) error {
	if err, ok := f.Fail[op+":"+table]; ok {
		return err
	}
	return f.Fail[op]
}

func (f *Faulty) Insert(ctx context.Context, row store.Record) error {
	if err := f.fault("insert", row.TableName()); err != nil {
		return err
	}
	return f.Backend.Insert(ctx, row)
}

func (f *Faulty) Find(ctx context.Context, table store.Record, q store.Query, dest interface{}) error {
	if err := f.fault("find", table.TableName()); err != nil {
		return err
	}
	return f.Backend.Find(ctx, table, q, dest)
}

func (f *Faulty) First(ctx context.Context, q store.Query, dest store.Record) error {
	if err := f.fault("first", dest.TableName()); err != nil {
		return err
	}
	return f.Backend.First(ctx, q, dest)
}

func (f *Faulty) Update(ctx context.Context, table store.Record, q store.Query, values map[string]interface{}) (int64, error) {
	if err := f.fault("update", table.TableName()); err != nil {
		return 0, err
	}
	return f.Backend.Update(ctx, table, q, values)
}

func (f *Faulty) Delete(ctx context.Context, table store.Record, q store.Query) (int64, error) {
	if err := f.fault("delete", table.TableName()); err != nil {
		return 0, err
	}
	return f.Backend.Delete(ctx, table, q)
}

func (f *Faulty) Ping(ctx context.Context) error {
	if err := f.fault("ping", ""); err != nil {
		return err
	}
	return f.Backend.Ping(ctx)
}
