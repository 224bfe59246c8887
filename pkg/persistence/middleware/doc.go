// Package middleware decorates ports.ResultStore implementations.
package middleware
