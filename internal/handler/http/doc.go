// Package http implements the liveness HTTP surface of the broker.
//
// It exposes GET /status and GET /api/version/ behind request tracing and
// access logging middleware. Secrets never travel over this transport.
package http
