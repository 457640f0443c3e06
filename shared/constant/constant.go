package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySessionID contextKey = "session_id"
	ContextKeyUsername  contextKey = "username"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCheckedIn = "checked-in"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	RequestParamSortBy    = "sortBy"
	RequestParamSortOrder = "sortOrder"
	RequestParamFields    = "fields"
)

const (
	RequestParamID = "id"
)

const (
	FieldCreatedAt = "created_at"
	FieldCreatedBy = "created_by"
	FieldUpdatedAt = "updated_at"
	FieldUpdatedBy = "updated_by"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelSessionScopeName    = "session"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderContentType  = "Content-Type"
	RequestHeaderUserAgent    = "User-Agent"
	RequestHeaderRequestID    = "X-Request-ID"
	RequestHeaderForwardedFor = "X-Forwarded-For"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
