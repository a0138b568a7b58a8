package cmd

import (
	"fmt"

	"github.com/ariebrainware/healthghar/config"
	"github.com/ariebrainware/healthghar/store"
	"gorm.io/gorm"
)

// openGorm connects the relational drivers. Supabase has no gorm handle.
func openGorm(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverMySQL, "":
		return config.ConnectMySQL()
	case config.DriverSQLite:
		return config.ConnectSQLite(cfg.SQLitePath)
	case config.DriverSupabase:
		return nil, fmt.Errorf("the supabase driver has no local schema; manage it in the Supabase project")
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

// openBackends builds the user and service backends for cfg.DBDriver, each
// bounded by PERSIST_TIMEOUT and instrumented. db is nil for supabase.
func openBackends(cfg *config.Config) (backends store.Backends, db *gorm.DB, err error) {
	if cfg.DBDriver == config.DriverSupabase {
		clients, err := config.NewSupabaseClients(cfg)
		if err != nil {
			return store.Backends{}, nil, err
		}
		backends = store.Backends{
			User:    store.NewPostgrest(clients.Anon),
			Service: store.NewPostgrest(clients.Service),
		}
	} else {
		db, err = openGorm(cfg)
		if err != nil {
			return store.Backends{}, nil, err
		}
		g := store.NewGorm(db)
		backends = store.Backends{User: g, Service: g}
	}

	return guard(backends, cfg), db, nil
}

func guard(backends store.Backends, cfg *config.Config) store.Backends {
	return backends.Wrap(func(b store.Backend) store.Backend {
		return store.Instrument(store.WithTimeout(b, cfg.PersistTimeout))
	})
}
