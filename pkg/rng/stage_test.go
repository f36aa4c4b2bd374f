package rng_test

import (
	"crypto/sha256"
	"testing"

	"github.com/rehmanul/floorplan-engine/pkg/rng"
)

// TestStageIsolation verifies that distinct pipeline stages derived from the
// same master seed produce independent sequences.
func TestStageIsolation(t *testing.T) {
	masterSeed := uint64(123456789)
	configHash := sha256.Sum256([]byte("floorplan_config_v1"))

	placementRNG := rng.NewRNG(masterSeed, "placement", configHash[:])
	corridorRNG := rng.NewRNG(masterSeed, "corridor", configHash[:])

	if placementRNG.Seed() == corridorRNG.Seed() {
		t.Fatal("distinct stage names produced the same derived seed")
	}
	if placementRNG.Intn(1_000_000) == corridorRNG.Intn(1_000_000) {
		// Extremely unlikely by chance; flags a derivation bug if it ever fires.
		t.Log("stage RNGs coincided on first draw; verify derivation is stage-sensitive")
	}
}

// TestStageRepeatability verifies that re-deriving a stage RNG from identical
// inputs reproduces its sequence exactly, which is the basis for invariant 8
// in the testable-properties list: same seed, same input, same config ⇒
// byte-identical LayoutResult.
func TestStageRepeatability(t *testing.T) {
	masterSeed := uint64(42)
	configHash := sha256.Sum256([]byte("size_mix=0.1,0.25,0.3,0.35"))

	a := rng.NewRNG(masterSeed, "placement", configHash[:])
	b := rng.NewRNG(masterSeed, "placement", configHash[:])

	for i := 0; i < 64; i++ {
		av, bv := a.Float64(), b.Float64()
		if av != bv {
			t.Fatalf("draw %d diverged: %v vs %v", i, av, bv)
		}
	}
}

// TestAspectSampling exercises the aspect-ratio sampling idiom used by the
// placement engine's UnitSpec generation (spec §3: aspect ∈ [1.2, 1.8]).
func TestAspectSampling(t *testing.T) {
	configHash := sha256.Sum256([]byte("cfg"))
	r := rng.NewRNG(7, "placement", configHash[:])

	for i := 0; i < 200; i++ {
		aspect := r.Float64Range(1.2, 1.8)
		if aspect < 1.2 || aspect >= 1.8 {
			t.Fatalf("aspect %v out of [1.2, 1.8)", aspect)
		}
	}
}
