package middleware

import (
	"context"
	"time"

	"github.com/ariebrainware/healthghar/admin"
	"github.com/ariebrainware/healthghar/identity"
	"github.com/ariebrainware/healthghar/report"
	"github.com/ariebrainware/healthghar/store"
	"github.com/ariebrainware/healthghar/telehealth"
	"github.com/ariebrainware/healthghar/wizard"
	"github.com/gin-gonic/gin"
)

const servicesKey = "services"

// Options are the policy knobs of the service graph.
type Options struct {
	SessionTTL     time.Duration
	WizardTTL      time.Duration
	ConflictPolicy string
	DeletePolicy   string
}

// HealthCheck is a named readiness check. It exposes Ping and nothing else.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Services is the service graph handlers work with. User scoped services get
// the user backend; only Authority sees the service backend.
type Services struct {
	Health    []HealthCheck
	Identity  *identity.Provider
	Slots     *telehealth.SlotService
	Recorder  *telehealth.Recorder
	Directory *telehealth.Directory
	Wizard    *wizard.Runner
	Reports   *report.Issuer
	Authority *admin.Authority
	Admin     *admin.Service
}

// NewServices wires every service over backends.
func NewServices(backends store.Backends, opts Options) *Services {
	conflicts := telehealth.ConflictCheckerFor(opts.ConflictPolicy)
	recorder := telehealth.NewRecorder(backends.User, conflicts)
	return &Services{
		Health:    healthChecks(backends),
		Identity:  identity.NewProvider(backends.User, opts.SessionTTL),
		Slots:     telehealth.NewSlotService(backends.User, conflicts),
		Recorder:  recorder,
		Directory: telehealth.NewDirectory(backends.User),
		Wizard:    wizard.NewRunner(wizard.NewSessionStore(opts.WizardTTL), backends.User, recorder),
		Reports:   report.NewIssuer(backends.User),
		Authority: admin.NewAuthority(backends.Service),
		Admin:     admin.NewService(admin.PolicyFor(opts.DeletePolicy), conflicts),
	}
}

// ServicesMiddleware makes svc available to handlers through GetServices.
func ServicesMiddleware(svc *Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(servicesKey, svc)
		c.Next()
	}
}

// GetServices returns the service graph set by ServicesMiddleware.
func GetServices(c *gin.Context) (*Services, bool) {
	v, ok := c.Get(servicesKey)
	if !ok {
		return nil, false
	}
	svc, ok := v.(*Services)
	return svc, ok && svc != nil
}

func healthChecks(backends store.Backends) []HealthCheck {
	user, service := backends.User, backends.Service
	return []HealthCheck{
		{Name: "user_store", Check: func(ctx context.Context) error { return user.Ping(ctx) }},
		{Name: "service_store", Check: func(ctx context.Context) error { return service.Ping(ctx) }},
	}
}
