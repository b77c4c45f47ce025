// Package routes defines the route registration types shared by HTTP
// handlers and the multiplexer builder.
package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler function.
// Patterns use net/http ServeMux syntax, including path values.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
	Children    []Group
}

// System defines the interface for route registration and HTTP handler building.
type System interface {
	RegisterGroup(group Group)
	RegisterRoute(route Route)
	Build() http.Handler
	Groups() []Group
	Routes() []Route
}
