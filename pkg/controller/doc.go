// Package controller contains HTTP middlewares and helper handlers used by
// the metrics/debug server.
//
// Provided middlewares:
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
//   - Healthz: A trivial liveness handler.
package controller
