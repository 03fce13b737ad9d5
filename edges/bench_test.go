package edges_test

import (
	"testing"

	"github.com/katalvlaran/lvledge/edges"
	"github.com/katalvlaran/lvledge/levels"
	"github.com/katalvlaran/lvledge/pulsegen"
)

func benchmarkEdges(b *testing.B, periods int, opts ...pulsegen.Option) {
	sig, err := pulsegen.Trapezoid(periods, opts...)
	if err != nil {
		b.Fatalf("Trapezoid failed: %v", err)
	}
	lv, _, err := levels.Compute(sig, nil)
	if err != nil {
		b.Fatalf("Compute failed: %v", err)
	}
	x, err := edges.NewExtractor(sig, lv)
	if err != nil {
		b.Fatalf("NewExtractor failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Edges(); err != nil {
			b.Fatalf("Edges failed: %v", err)
		}
	}
}

// BenchmarkEdges_Clean sweeps 1000 clean periods (40000 samples).
func BenchmarkEdges_Clean(b *testing.B) { benchmarkEdges(b, 1000) }

// BenchmarkEdges_Noisy sweeps 1000 noisy periods.
func BenchmarkEdges_Noisy(b *testing.B) {
	benchmarkEdges(b, 1000, pulsegen.WithNoise(0.5), pulsegen.WithSeed(3))
}

// BenchmarkEdges_Runts sweeps 1000 periods, every tenth with a runt pair.
func BenchmarkEdges_Runts(b *testing.B) {
	var opts []pulsegen.Option
	for p := 0; p < 1000; p += 10 {
		opts = append(opts, pulsegen.WithDip(p, 3, 2, 0.6))
	}
	benchmarkEdges(b, 1000, opts...)
}
