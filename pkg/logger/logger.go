package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	// Get log level from environment
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	// Create handler options
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Create handler based on environment
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		// Use text handler for development (more readable)
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Use JSON handler for production (structured)
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithSessionID adds the checkout session ID to logger context
func (l *Logger) WithSessionID(sessionID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("session_id", sessionID)),
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.Int("size", c.Writer.Size()),
	)
}

// Upstream collaborator logging methods

// LogUpstreamCall logs a call to the cinema backend
func (l *Logger) LogUpstreamCall(ctx context.Context, method, path string, status int, duration time.Duration) {
	l.Logger.DebugContext(ctx,
		"Upstream Call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Duration("duration", duration),
	)
}

// LogUpstreamDegraded logs an upstream failure that degraded to a safe default
func (l *Logger) LogUpstreamDegraded(ctx context.Context, path string, err error) {
	l.Logger.WarnContext(ctx,
		"Upstream Degraded",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
}

// Booking pipeline logging methods

// LogSeatsConfirmed logs a confirmed seat selection
func (l *Logger) LogSeatsConfirmed(ctx context.Context, sessionID string, seats []string) {
	l.Logger.InfoContext(ctx,
		"Seats Confirmed",
		slog.String("session_id", sessionID),
		slog.Any("seats", seats),
	)
}

// LogPromoApplied logs a successfully applied promo code
func (l *Logger) LogPromoApplied(ctx context.Context, sessionID, code string, discount float64) {
	l.Logger.InfoContext(ctx,
		"Promo Applied",
		slog.String("session_id", sessionID),
		slog.String("code", code),
		slog.Float64("discount", discount),
	)
}

// LogOrderPlaced logs a fully reserved, persisted order
func (l *Logger) LogOrderPlaced(ctx context.Context, orderRef, userID string, seats int, total float64) {
	l.Logger.InfoContext(ctx,
		"Order Placed",
		slog.String("order_ref", orderRef),
		slog.String("user_id", userID),
		slog.Int("seats", seats),
		slog.Float64("total", total),
	)
}

// LogReservationRollback logs compensating seat releases after a partial commit failure
func (l *Logger) LogReservationRollback(ctx context.Context, sessionID string, released, failed int) {
	l.Logger.WarnContext(ctx,
		"Reservation Rollback",
		slog.String("session_id", sessionID),
		slog.Int("released", released),
		slog.Int("release_failures", failed),
	)
}

// Security logging methods

// LogAuthFailure logs failed authentication
func (l *Logger) LogAuthFailure(ctx context.Context, reason, ip string) {
	l.Logger.WarnContext(ctx,
		"Authentication Failure",
		slog.String("reason", reason),
		slog.String("ip", ip),
	)
}

// Helper methods for common patterns

// InfoWithContext logs an info message with context
func (l *Logger) InfoWithContext(ctx context.Context, msg string, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	l.Logger.InfoContext(ctx, msg, args...)
}

// ErrorWithContext logs an error message with context
func (l *Logger) ErrorWithContext(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2+2)
	args = append(args, slog.String("error", err.Error()))
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	l.Logger.ErrorContext(ctx, msg, args...)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
