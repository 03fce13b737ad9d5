// Package pulsegen provides deterministic trapezoidal pulse trains for tests,
// examples and fixtures.
//
// The package offers the following key components:
//
//   - Trapezoid / TrapezoidValues: periods × [low plateau, rise, high plateau, fall].
//   - Option constructors (builder style; they panic on meaningless values):
//     – WithLevels:         low and high plateau amplitudes.
//     – WithSegments:       sample counts of the four segments.
//     – WithDip:            a short dip inside one high plateau (runt fixtures).
//     – WithNoise/WithSeed: additive Gaussian noise, reproducible per seed.
//     – WithSampleInterval: horizontal axis start and step.
//
// Guarantees:
//
//   - Strict determinism per (periods, options).
//   - Ramps end exactly on the target plateau value.
//   - O(n) time and memory.
package pulsegen
