package area_test

import (
	"testing"

	"github.com/katalvlaran/lvledge/area"
	"github.com/katalvlaran/lvledge/levels"
	"github.com/katalvlaran/lvledge/pulsegen"
)

// BenchmarkBuild indexes a 4000-sample pulse train.
func BenchmarkBuild(b *testing.B) {
	sig, err := pulsegen.Trapezoid(100)
	if err != nil {
		b.Fatalf("Trapezoid failed: %v", err)
	}
	lv, _, err := levels.Compute(sig, nil)
	if err != nil {
		b.Fatalf("Compute failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := area.Build(sig, lv); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkFirstIn measures one binary-search query.
func BenchmarkFirstIn(b *testing.B) {
	sig, _ := pulsegen.Trapezoid(100)
	lv, _, _ := levels.Compute(sig, nil)
	idx, _ := area.Build(sig, lv)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = idx.FirstIn(area.Low, i%idx.Len())
	}
}
