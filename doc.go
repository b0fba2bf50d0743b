// Package main provides the entry point of go-randomstring.
// It generates fixed-length random strings from a character set using a
// cryptographically secure random source, either as one-shot command line
// calls or served as a REST API by a Fiber web server with Prometheus metrics.
package main
