package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	supa "github.com/supabase-community/supabase-go"
)

// SupabaseClients holds the two PostgREST clients of the managed backend.
// Service uses the service-role key and bypasses row level security; only
// the admin capability may be built on top of it.
type SupabaseClients struct {
	Anon    *supa.Client
	Service *supa.Client
}

// NewSupabaseClients builds both clients from the configuration. When no anon
// key is configured the service client is used for both roles.
func NewSupabaseClients(cfg *Config) (*SupabaseClients, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY are required for the supabase driver")
	}

	service, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("supabase service client: %w", err)
	}

	if cfg.SupabaseAnonKey == "" {
		log.Warn().Msg("SUPABASE_ANON_KEY not set, user paths share the service client")
		return &SupabaseClients{Anon: service, Service: service}, nil
	}

	anon, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("supabase anon client: %w", err)
	}
	return &SupabaseClients{Anon: anon, Service: service}, nil
}
