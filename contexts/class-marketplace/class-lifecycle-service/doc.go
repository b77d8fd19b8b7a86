// Package classlifecycle owns the class posting state machine: creation,
// admin approval and rejection, tutor application, tutor selection,
// completion, and cancellation requests.
//
// Layering:
// - domain: posting/notification entities, status invariants, errors
// - application: commands/queries/workers using explicit ports
// - ports: stable boundaries for persistence, directory, events
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under the class-marketplace context.
// - Role gating happens at the HTTP platform layer via access-guard;
//   ownership and selected-tutor checks live in the commands here.
// - Notifications go through the outbox; the relay worker delivers them.
package classlifecycle
