// Package http implements the REST API of the booking platform.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, CORS, token
// authentication and the admin role check are handled in this package before
// requests are delegated to the service layer.
package http
