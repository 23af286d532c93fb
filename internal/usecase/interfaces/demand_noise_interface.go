package interfaces

// IDemandNoise is the pluggable randomness strategy behind demand forecasting
// and notification gating.
//
// Keeping it an injected collaborator (instead of ambient rand) makes every
// engine output reproducible: production wires a seeded uniform source, tests
// wire a scripted fake. Whether the perturbation models real forecast
// uncertainty or placeholds a future statistical model, swapping it requires
// no engine change.
type IDemandNoise interface {
	// Factor returns a multiplicative perturbation in [0.8, 1.2].
	Factor() float64
	// Gate draws a Bernoulli trial with success probability p.
	Gate(p float64) bool
}
