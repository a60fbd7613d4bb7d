// Package covenantgate contains the Mostar implementation of the trust and
// authorization gate: actor registration, the bow ceremony that derives a
// trust tier from resonance plus the sworn oath, the append-only trust
// ledger, and the execution gate that re-scores every privileged request.
//
// Layering:
// - domain: tier policy, oath validation, errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for persistence, clock, ids, and resonance
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
package covenantgate
