// Package http implements the HTTP transport layer of the server.
//
// It wires the request decorators onto a chi router: every POST route under
// /api is guarded by one decorator and answers with the payload it accepted.
// Cross-cutting concerns such as request tracing, access logging, body size
// limits and method checks are handled here before a request reaches its
// decorator.
package http
