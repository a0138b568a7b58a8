package util

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
)

// SecurityEventType represents different types of security events
type SecurityEventType string

const (
	EventLoginSuccess       SecurityEventType = "LOGIN_SUCCESS"
	EventLoginFailure       SecurityEventType = "LOGIN_FAILURE"
	EventSignupSuccess      SecurityEventType = "SIGNUP_SUCCESS"
	EventLogout             SecurityEventType = "LOGOUT"
	EventUnauthorizedAccess SecurityEventType = "UNAUTHORIZED_ACCESS"
	EventForbiddenAccess    SecurityEventType = "FORBIDDEN_ACCESS"
	EventRateLimitExceeded  SecurityEventType = "RATE_LIMIT_EXCEEDED"
	EventSuspiciousActivity SecurityEventType = "SUSPICIOUS_ACTIVITY"
	EventEndpointCall       SecurityEventType = "ENDPOINT_CALL"
	EventAdminAction        SecurityEventType = "ADMIN_ACTION"
)

// SecurityEvent represents a security event to be logged
type SecurityEvent struct {
	EventType SecurityEventType
	UserID    string
	Email     string
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

const securityPersistTimeout = 3 * time.Second

var (
	securityMu     sync.RWMutex
	securityLogger *zerolog.Logger
	securityStore  store.Appender
)

// SetSecurityLogStore sets where security events are persisted. It takes an
// Appender so the audit path can only add security_logs rows. Call it during
// startup after the store is built. nil disables persistence.
func SetSecurityLogStore(a store.Appender) {
	securityMu.Lock()
	securityStore = a
	securityMu.Unlock()
}

// SetSecurityLoggerForTest routes security output to l.
func SetSecurityLoggerForTest(l zerolog.Logger) {
	securityMu.Lock()
	securityLogger = &l
	securityMu.Unlock()
}

func currentSecurityLogger() zerolog.Logger {
	securityMu.RLock()
	defer securityMu.RUnlock()
	if securityLogger != nil {
		return *securityLogger
	}
	return Component("security")
}

// sanitizeLogValue strips line breaks and truncates long values
func sanitizeLogValue(value string) string {
	value = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(value)
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogSecurityEvent logs a security event and persists it best-effort.
func LogSecurityEvent(event SecurityEvent) {
	l := currentSecurityLogger()
	entry := l.Warn()
	if event.EventType == EventEndpointCall || event.EventType == EventLoginSuccess || event.EventType == EventLogout || event.EventType == EventSignupSuccess {
		entry = l.Info()
	}
	entry.
		Str("event", sanitizeLogValue(string(event.EventType))).
		Str("user_id", sanitizeLogValue(event.UserID)).
		Str("email", sanitizeLogValue(event.Email)).
		Str("ip", sanitizeLogValue(event.IP)).
		Str("user_agent", sanitizeLogValue(event.UserAgent)).
		Int("details_count", len(event.Details)).
		Msg(sanitizeLogValue(event.Message))

	securityMu.RLock()
	sink := securityStore
	securityMu.RUnlock()
	if sink == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	row := model.SecurityLog{
		ID:        uuid.NewString(),
		EventType: string(event.EventType),
		UserID:    sanitizeLogValue(event.UserID),
		Email:     sanitizeLogValue(event.Email),
		IP:        sanitizeLogValue(event.IP),
		Location:  sanitizeLogValue(GetIPLocation(event.IP).String()),
		UserAgent: sanitizeLogValue(event.UserAgent),
		Message:   sanitizeLogValue(event.Message),
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), securityPersistTimeout)
	defer cancel()
	if err := sink.Append(ctx, &row); err != nil {
		l.Error().Err(err).Msg("failed to persist security event")
	}
}

func LogLoginSuccess(userID, email, ip, userAgent string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLoginSuccess,
		UserID:    userID,
		Email:     email,
		IP:        ip,
		UserAgent: userAgent,
		Message:   "User logged in successfully",
	})
}

func LogLoginFailure(email, ip, userAgent, reason string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLoginFailure,
		Email:     email,
		IP:        ip,
		UserAgent: userAgent,
		Message:   fmt.Sprintf("Login failed: %s", reason),
	})
}

func LogSignupSuccess(userID, email, ip, userAgent string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventSignupSuccess,
		UserID:    userID,
		Email:     email,
		IP:        ip,
		UserAgent: userAgent,
		Message:   "User signed up",
	})
}

func LogLogout(userID, email, ip, userAgent string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLogout,
		UserID:    userID,
		Email:     email,
		IP:        ip,
		UserAgent: userAgent,
		Message:   "User logged out",
	})
}

// LogUnauthorizedAccess logs a request rejected for missing or bad credentials.
func LogUnauthorizedAccess(userID, email, ip, resource, reason string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventUnauthorizedAccess,
		UserID:    userID,
		Email:     email,
		IP:        ip,
		Message:   fmt.Sprintf("Unauthorized access to %s: %s", resource, reason),
	})
}

// LogForbiddenAccess logs an authenticated caller reaching past its role.
func LogForbiddenAccess(userID, email, ip, resource string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventForbiddenAccess,
		UserID:    userID,
		Email:     email,
		IP:        ip,
		Message:   fmt.Sprintf("Forbidden access to %s", resource),
	})
}

func LogRateLimitExceeded(email, ip, endpoint string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventRateLimitExceeded,
		Email:     email,
		IP:        ip,
		Message:   fmt.Sprintf("Rate limit exceeded for endpoint: %s", endpoint),
	})
}

// LogAdminAction records an action taken through the admin capability.
func LogAdminAction(userID, email, action string, details map[string]interface{}) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventAdminAction,
		UserID:    userID,
		Email:     email,
		Message:   action,
		Details:   details,
	})
}
