package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/logger"
	"github.com/guttosm/catering-service/internal/metrics"
	"github.com/guttosm/catering-service/internal/service"
)

const (
	laneAudit   = "audit"
	laneRequest = "request"
)

// AsyncLoggerConfig holds configuration for the async logger.
type AsyncLoggerConfig struct {
	// BufferSize bounds queued request log entries.
	BufferSize int
	// AuditBufferSize bounds queued audit entries for package, item, add-on and dish writes.
	AuditBufferSize int
	NumWorkers      int
	// WriteTimeout bounds a single write to the audit log store.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns sensible defaults for the async logger.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:      1000,
		AuditBufferSize: 256,
		NumWorkers:      4,
		WriteTimeout:    5 * time.Second,
	}
}

// AsyncLoggerStats counts entries by outcome. AuditDropped is included in Dropped.
type AsyncLoggerStats struct {
	Enqueued     int64
	Dropped      int64
	AuditDropped int64
	Written      int64
	Errors       int64
}

// AsyncLogger writes log entries to the audit log store from a fixed worker pool.
// Audit entries have their own queue and are always taken before request entries.
type AsyncLogger struct {
	loggingService service.LoggingService
	auditCh        chan *model.LogEntry
	requestCh      chan *model.LogEntry
	wg             sync.WaitGroup
	stopCh         chan struct{}
	writeTimeout   time.Duration

	enqueued     int64
	dropped      int64
	auditDropped int64
	written      int64
	errors       int64
}

// NewAsyncLogger starts the worker pool. It returns nil without a logging service.
func NewAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}
	if cfg.NumWorkers < 1 {
		cfg.NumWorkers = 1
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		auditCh:        make(chan *model.LogEntry, cfg.AuditBufferSize),
		requestCh:      make(chan *model.LogEntry, cfg.BufferSize),
		stopCh:         make(chan struct{}),
		writeTimeout:   cfg.WriteTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}

	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	for {
		select {
		case entry := <-al.auditCh:
			al.writeEntry(entry)
			continue
		default:
		}

		select {
		case entry := <-al.auditCh:
			al.writeEntry(entry)
		case entry := <-al.requestCh:
			al.writeEntry(entry)
		case <-al.stopCh:
			al.drain()
			return
		}
	}
}

func (al *AsyncLogger) drain() {
	for {
		select {
		case entry := <-al.auditCh:
			al.writeEntry(entry)
		case entry := <-al.requestCh:
			al.writeEntry(entry)
		default:
			return
		}
	}
}

func (al *AsyncLogger) writeEntry(entry *model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.loggingService.CreateLog(ctx, entry); err != nil {
		atomic.AddInt64(&al.errors, 1)
		metrics.RecordLogEntry(laneOf(entry), "error")
		logger.Logger().Warn().
			Err(err).
			Str("action", entry.Action).
			Str("resource_id", entry.ResourceID).
			Msg("Failed to write log entry")
		return
	}
	atomic.AddInt64(&al.written, 1)
	metrics.RecordLogEntry(laneOf(entry), "written")
}

// Log queues an entry. It returns false when the entry's queue is full.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	lane := laneOf(entry)
	ch := al.requestCh
	if lane == laneAudit {
		ch = al.auditCh
	}

	select {
	case ch <- entry:
		atomic.AddInt64(&al.enqueued, 1)
		return true
	default:
		atomic.AddInt64(&al.dropped, 1)
		if lane == laneAudit {
			atomic.AddInt64(&al.auditDropped, 1)
		}
		metrics.RecordLogEntry(lane, "dropped")
		return false
	}
}

// Stop waits for the workers to write everything already queued.
func (al *AsyncLogger) Stop() {
	close(al.stopCh)
	al.wg.Wait()
}

// Stats returns current async logger statistics.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	return AsyncLoggerStats{
		Enqueued:     atomic.LoadInt64(&al.enqueued),
		Dropped:      atomic.LoadInt64(&al.dropped),
		AuditDropped: atomic.LoadInt64(&al.auditDropped),
		Written:      atomic.LoadInt64(&al.written),
		Errors:       atomic.LoadInt64(&al.errors),
	}
}

func laneOf(entry *model.LogEntry) string {
	if entry.Action != "" {
		return laneAudit
	}
	return laneRequest
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger initializes the global async logger, stopping any previous one.
func InitAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
	}
	globalAsyncLogger = NewAsyncLogger(loggingService, cfg)
}

// GetAsyncLogger returns the global async logger instance.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger gracefully shuts down the global async logger.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
		globalAsyncLogger = nil
	}
}
