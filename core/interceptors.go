package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogEnvVar selects the request logging level: "debug" logs bodies, "info"
// logs one line per request and response, anything else disables logging.
const LogEnvVar = "ASSISTANT_LOG"

// NewLogger builds the default logger from the ASSISTANT_LOG environment variable.
func NewLogger() *zap.Logger {
	return newLoggerForLevel(strings.ToLower(os.Getenv(LogEnvVar)))
}

func newLoggerForLevel(level string) *zap.Logger {
	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "info":
		lvl = zapcore.InfoLevel
	default:
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger.Named("assistant")
}

// ######################################################
//
//	REQUEST/RESPONSE INTERCEPTORS
//
// ######################################################

// RequestInterceptor defines a middleware-style interface for intercepting API requests
// and responses. Typical use cases include logging, request mutation and
// response transformation.
type RequestInterceptor interface {
	// BeforeRequest is invoked prior to sending the API request.
	//
	// Parameters:
	//   - ctx: The request context, useful for deadlines, tracing, or cancellation.
	//   - req: Request object
	//   - verb: The HTTP method (e.g., GET, POST, PUT).
	//   - url: The URL being accessed (including query params)
	//   - body: The request body as an io.Reader, typically containing JSON data.
	BeforeRequest(context.Context, *http.Request, string, string, io.Reader) error

	// AfterRequest is invoked after the API response is received.
	// It may return a modified Renderable.
	AfterRequest(context.Context, Renderable) (Renderable, error)
}

// doBeforeRequest runs logging, registered interceptors and the user callback, in that order.
func (s *Session) doBeforeRequest(ctx context.Context, r *http.Request, verb, url string, body []byte) error {
	s.beforeRequestLog(verb, url, body)
	for _, interceptor := range s.interceptors {
		if err := interceptor.BeforeRequest(ctx, r, verb, url, readerOrNil(body)); err != nil {
			return err
		}
	}
	if s.config.BeforeRequestFn != nil {
		return s.config.BeforeRequestFn(ctx, r, verb, url, readerOrNil(body))
	}
	return nil
}

// doAfterRequest tags the response with the operation id, then runs logging,
// registered interceptors and the user callback.
func (s *Session) doAfterRequest(ctx context.Context, operationID string, response Renderable) (Renderable, error) {
	var err error
	if operationID != "" {
		setResourceKey(response, operationID)
	}
	s.afterRequestLog(response)
	for _, interceptor := range s.interceptors {
		if response, err = interceptor.AfterRequest(ctx, response); err != nil {
			return nil, err
		}
	}
	if s.config.AfterRequestFn != nil {
		if response, err = s.config.AfterRequestFn(ctx, response); err != nil {
			return nil, err
		}
	}
	return response, nil
}

func readerOrNil(body []byte) io.Reader {
	if body == nil {
		return nil
	}
	return bytes.NewReader(body)
}

// ######################################################
//
//	REQUEST/RESPONSE LOGGING
//
// ######################################################

// beforeRequestLog logs the method and URL at info level, and the compacted
// request body at debug level.
func (s *Session) beforeRequestLog(verb, url string, body []byte) {
	logger := s.logger()
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || !logger.Core().Enabled(zapcore.DebugLevel) {
		logger.Info("http request start", zap.String("method", verb), zap.String("url", url))
		return
	}
	var compact bytes.Buffer
	bodyMsg := string(trimmed)
	if err := json.Compact(&compact, trimmed); err == nil {
		bodyMsg = compact.String()
	}
	logger.Debug("http request start",
		zap.String("method", verb),
		zap.String("url", url),
		zap.String("body", bodyMsg))
}

// afterRequestLog logs a summary at info level and the full payload at debug level.
func (s *Session) afterRequestLog(response Renderable) {
	logger := s.logger()
	if logger.Core().Enabled(zapcore.DebugLevel) {
		logger.Debug("response", zap.String("summary", responseSummary(response)), zap.String("body", response.PrettyJson("  ")))
		return
	}
	logger.Info("response", zap.String("summary", responseSummary(response)))
}

func responseSummary(response Renderable) string {
	switch resp := response.(type) {
	case Record:
		if resourceType, ok := resp[ResourceTypeKey].(string); ok && resourceType != "" {
			return fmt.Sprintf("Record of type: %s", resourceType)
		}
		return "Record received"
	case RecordSet:
		count := len(resp)
		if count > 0 {
			if resourceType, ok := resp[0][ResourceTypeKey].(string); ok && resourceType != "" {
				return fmt.Sprintf("RecordSet with %d record(s) of type: %s", count, resourceType)
			}
		}
		return fmt.Sprintf("RecordSet with %d record(s)", count)
	}
	return "Response received"
}
