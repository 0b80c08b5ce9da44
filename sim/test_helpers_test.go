package sim

import (
	"math/rand"
	"testing"
)

// runEpisode builds and runs one episode, failing the test on
// construction errors.
func runEpisode(t *testing.T, arch Architecture, cfg Config, seed int64) (*Episode, *EpisodeStats) {
	t.Helper()
	ep, err := NewEpisode(arch, cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewEpisode(%s): %v", arch, err)
	}
	return ep, ep.Run()
}

// uncontendedConfig returns a configuration with capacity far above the
// offered load, so pool waits are effectively zero and completed orders'
// cycle times equal their pure service times.
func uncontendedConfig() Config {
	cfg := DefaultConfig()
	cfg.ArrivalRate = 1
	cfg.Resources = 400
	return cfg
}

// completedOrders filters the episode's order registry down to orders
// that reached Done.
func completedOrders(ep *Episode) []*Order {
	var done []*Order
	for _, o := range ep.orders {
		if o.EndProcessTime > 0 {
			done = append(done, o)
		}
	}
	return done
}
