// Package acl is the anti-corruption layer in front of the downstream
// authorization policy service. Wire shapes and their translation live in
// acl/policy; this package owns the HTTP exchange and maps every failure to
// a *domain.Error before it reaches a use case.
package acl
