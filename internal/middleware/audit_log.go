package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/service"
)

// AuditEvent describes a state-changing action on a resource.
type AuditEvent struct {
	Action       string // e.g. "package.create", "item.link"
	ResourceType string
	ResourceID   string
	Message      string
	Fields       map[string]interface{}
}

// AuditLog records a successful mutation for audit purposes.
func AuditLog(loggingService service.LoggingService, c *gin.Context, ev AuditEvent) {
	if loggingService == nil {
		return
	}
	storeAudit(loggingService, newAuditEntry(c, "info", ev))
}

// AuditLogError records a failed mutation for audit purposes.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, ev AuditEvent, err error) {
	if loggingService == nil {
		return
	}
	entry := newAuditEntry(c, "error", ev)
	if err != nil {
		entry.Error = err.Error()
	}
	storeAudit(loggingService, entry)
}

func newAuditEntry(c *gin.Context, level string, ev AuditEvent) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:    time.Now(),
		Level:        level,
		Message:      ev.Message,
		RequestID:    GetRequestID(c),
		Method:       c.Request.Method,
		Path:         c.Request.URL.Path,
		IP:           c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
		Action:       ev.Action,
		ResourceType: ev.ResourceType,
		ResourceID:   ev.ResourceID,
		Fields:       ev.Fields,
	}
	if entry.Message == "" {
		entry.Message = ev.Action
	}
	setActorFields(c, entry)
	return entry
}

func setActorFields(c *gin.Context, entry *model.LogEntry) {
	if actor, ok := GetActor(c); ok {
		entry.ActorID = actor.ID.Hex()
		entry.ActorType = string(actor.Type)
	}
}

// storeAudit goes through the async logger when one is running.
func storeAudit(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil && asyncLogger.Log(entry) {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
