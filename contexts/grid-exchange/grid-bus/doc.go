// Package gridbus is the append-only event log of the grid plus its live
// fan-out. Publishes are gated on soul-registry identity, durably appended in
// one total order per store, and only then broadcast to open subscribers.
package gridbus
