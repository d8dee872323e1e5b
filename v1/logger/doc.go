// Package logger provides structured logging on top of Uber's zap.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: the contract other packages depend on
//   - LoggerClient struct: the zap-backed implementation
//   - NewLoggerClient constructor: returns *LoggerClient
//   - FX module: provides both *LoggerClient and Logger
//
// # Direct Usage (Without FX)
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		EnableTracing: true,
//		ServiceName:   "billing",
//	})
//
//	log.Info("pool ready", nil, map[string]interface{}{
//		"channels": 3,
//	})
//
//	// trace_id and span_id are attached from ctx
//	log.WarnWithContext(ctx, "node unreachable", err, map[string]interface{}{
//		"node": "10.0.0.7:5672",
//	})
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL=debug          # debug, info, warning, error
//	LOGGER_ENABLE_TRACING=true      # add trace_id/span_id in *WithContext methods
//	LOGGER_SERVICE_NAME=billing     # "service" field
//
// # Thread Safety
//
// All methods are safe for concurrent use.
package logger
