// Package soulregistry is the identity directory of the grid. Every
// participant that publishes or receives events carries a soulprint here,
// keyed by slug, and the bus consults this registry before accepting traffic.
package soulregistry
