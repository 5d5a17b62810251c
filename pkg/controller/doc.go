// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the allowed origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Records request counts and latencies through an OpenTelemetry meter.
//   - WithRateLimit: Applies a token bucket per caller key.
//
// Provided helpers:
//   - Pprof: Returns a router exposing the net/http/pprof profiles.
//   - WriteJSON / WriteError: Encode responses and semantic errors.
package controller
