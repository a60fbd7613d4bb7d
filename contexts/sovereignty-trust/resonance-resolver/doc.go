// Package resonanceresolver contains the Mostar implementation of the
// resonance resolver: a seeded Bayesian scorer mapping an evidence vector
// over contexts to a posterior over latent patterns.
//
// The module keeps domain/application logic decoupled from runtime/platform
// concerns through ports and adapter composition.
package resonanceresolver
