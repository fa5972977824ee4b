// Package profile loads HCL generation profiles and the per-game YAML
// sidecars of a benchmark corpus.
//
// A profile names suites to generate:
//
//	seed = 42
//
//	suite "smoke" {
//	  shape           = "benchmark"
//	  sizes           = [10, 20, 50]
//	  count           = 15
//	  edge_factor     = [1.5, 3.0]
//	  target_fraction = [0.10, 0.20]
//	  weights = {
//	    always   = 0.30
//	    equality = 0.20
//	    modulo   = 0.20
//	    // omitted shapes weigh zero
//	  }
//	}
//
// Load/Parse decode and validate the document; Suite.ShapeWeights turns the
// weights attribute into a temporal.ShapeWeights table. Meta is the YAML
// sidecar written next to each generated game, and TimeBound draws the
// solver horizon that scales with the game size.
package profile
