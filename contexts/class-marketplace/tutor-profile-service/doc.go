// Package tutorprofile owns tutor CVs: submission, staff review, the
// pending-review queue, and the public searchable tutor directory.
//
// Layering:
// - domain: profile entity, review verdicts, errors
// - application: commands/queries using explicit ports
// - ports: stable boundary for profile persistence
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - One profile per user; resubmission returns the CV to review.
// - Only APPROVED profiles surface in the public directory.
package tutorprofile
