// Package router mounts handler route groups onto the versioned API prefix.
package router

import "github.com/gin-gonic/gin"

// DefaultVersion is the API version used when none is given.
const DefaultVersion = "v1"

// RouteRegistrar is implemented by handlers that mount their own routes
// onto the shared API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router collects registrars and mounts them under /api/<version>.
type Router struct {
	engine     *gin.Engine
	version    string
	registrars []RouteRegistrar
}

// New creates a Router for the given engine and API version. An empty
// version falls back to DefaultVersion.
func New(engine *gin.Engine, version string) *Router {
	if version == "" {
		version = DefaultVersion
	}
	return &Router{engine: engine, version: version}
}

// Register queues a registrar; routes are mounted on Setup. Returns the
// Router so registrations chain.
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup mounts every registered handler under the versioned group and
// returns the group for any extra routes the caller wants on it.
func (r *Router) Setup() *gin.RouterGroup {
	api := r.engine.Group("/api/" + r.version)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
	return api
}
