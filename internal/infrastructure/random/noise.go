package random

import (
	"math/rand"
	"os"
	"strconv"
	"sync"
	"time"

	"sarb_ai/internal/usecase/interfaces"
)

const (
	noiseFloor = 0.8
	noiseSpan  = 0.4
)

// UniformNoise is the default IDemandNoise implementation: a seeded uniform
// source producing multiplicative perturbations in [0.8, 1.2] and Bernoulli
// gates. The mutex makes it safe for concurrent requests; math/rand.Rand is
// not.

type UniformNoise struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ interfaces.IDemandNoise = (*UniformNoise)(nil)

func NewUniformNoise(seed int64) *UniformNoise {
	return &UniformNoise{rng: rand.New(rand.NewSource(seed))}
}

// NewUniformNoiseFromEnv seeds from DEMAND_NOISE_SEED when set (reproducible
// runs), otherwise from the current time.
func NewUniformNoiseFromEnv() *UniformNoise {
	if v := os.Getenv("DEMAND_NOISE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return NewUniformNoise(seed)
		}
	}
	return NewUniformNoise(time.Now().UnixNano())
}

func (n *UniformNoise) Factor() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return noiseFloor + noiseSpan*n.rng.Float64()
}

func (n *UniformNoise) Gate(p float64) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rng.Float64() < p
}
