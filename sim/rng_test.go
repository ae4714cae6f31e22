package sim

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// BDD: Same key+name produces same sequence
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 3; i++ {
		v1 := rng1.ForSubsystem(SubsystemService).Float64()
		v2 := rng2.ForSubsystem(SubsystemService).Float64()
		if v1 != v2 {
			t.Errorf("Value %d: got %v and %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// BDD: Drawing from subsystem A doesn't affect subsystem B
	rngA := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemArrivals).Float64()
	}
	aServiceFirst := rngA.ForSubsystem(SubsystemService).Float64()

	fresh := NewPartitionedRNG(NewSimulationKey(42))
	expectedFirst := fresh.ForSubsystem(SubsystemService).Float64()

	if aServiceFirst != expectedFirst {
		t.Errorf("A's service first value = %v, want %v (isolation broken)", aServiceFirst, expectedFirst)
	}
}

func TestPartitionedRNG_ArrivalsUseMasterSeed(t *testing.T) {
	// BDD: "arrivals" subsystem uses master seed directly
	seed := int64(42)
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	arrivals := rng.ForSubsystem(SubsystemArrivals)
	direct := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	for i := 0; i < 10; i++ {
		got, want := arrivals.Float64(), direct.Float64()
		if got != want {
			t.Errorf("Value %d: arrivals RNG = %v, direct RNG = %v", i, got, want)
		}
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))

	if rng.ForSubsystem(SubsystemArrivals) != rng.ForSubsystem(SubsystemArrivals) {
		t.Error("ForSubsystem returned different instances for same name")
	}
}

func TestPartitionedRNG_NegativeSeed(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(math.MinInt64))

	val := rng.ForSubsystem(SubsystemService).Float64()
	if val < 0 || val >= 1 {
		t.Errorf("Float64() returned %v, want [0, 1)", val)
	}
}

func TestPartitionedRNG_LazyInitialization(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))

	if len(rng.subsystems) != 0 {
		t.Errorf("New PartitionedRNG has %d subsystems, want 0", len(rng.subsystems))
	}

	rng.ForSubsystem(SubsystemArrivals)

	if len(rng.subsystems) != 1 {
		t.Errorf("After one ForSubsystem call, have %d subsystems, want 1", len(rng.subsystems))
	}
}

func TestFnv1a64_Collision(t *testing.T) {
	names := []string{
		SubsystemArrivals,
		SubsystemService,
		"replication_0",
		"replication_1",
		"replication_100",
		"",
	}

	hashes := make(map[int64]string)
	for _, name := range names {
		h := fnv1a64(name)
		if existing, ok := hashes[h]; ok {
			t.Errorf("Hash collision: %q and %q both hash to %d", name, existing, h)
		}
		hashes[h] = name
	}
}

func TestSubsystemReplication(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{0, "replication_0"},
		{7, "replication_7"},
	}

	for _, tt := range tests {
		if got := SubsystemReplication(tt.id); got != tt.want {
			t.Errorf("SubsystemReplication(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func BenchmarkPartitionedRNG_ForSubsystem_CacheHit(b *testing.B) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	rng.ForSubsystem(SubsystemArrivals)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng.ForSubsystem(SubsystemArrivals)
	}
}
