// Package http provides HTTP server infrastructure including module registration.
package http

import "github.com/gin-gonic/gin"

// RouterContext carries the route groups a module can mount onto.
type RouterContext struct {
	// API is the versioned API group (/api/v1).
	API *gin.RouterGroup
}

// Module is a bounded-context module that mounts its own routes.
type Module interface {
	// Name returns the module identifier.
	Name() string
	// RegisterRoutes mounts the module's routes on the provided context.
	RegisterRoutes(ctx *RouterContext)
}
