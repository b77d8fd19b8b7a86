// Package accessguard decides whether an actor may invoke an operation.
//
// Layering:
// - domain: Actor/Role entities, the any-of role combinator, errors
// - application: the Guard facade used by the HTTP platform layer
// - ports: the TokenVerifier boundary
// - adapters: the JWT bearer-token verifier
//
// Ownership predicates (class owner, selected tutor) belong to the
// resource-owning modules, not here.
package accessguard
