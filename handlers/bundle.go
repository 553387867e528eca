package handlers

import (
	userService "wayfarer/services/user"
)

// HandlerBundle aggregates the handlers so route registration takes a single
// dependency. UserService is exposed for the auth middleware.
type HandlerBundle struct {
	Catalog  *CatalogHandler
	Reviews  *ReviewHandler
	Profiles *ProfileHandler
	Auth     *AuthHandler
	Users    *UserHandler

	UserService userService.Service
}
