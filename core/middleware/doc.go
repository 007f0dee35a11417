// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation to protect endpoints.
//   - RayID: a unique request ID (RayID) for every incoming request,
//     injected into the context and response headers for tracing.
package middleware
