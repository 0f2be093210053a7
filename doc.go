// Package chunky is a real-time 2D rendering sandbox for [Ebitengine]
// built around a resolution-decoupled pipeline: all demo content is
// drawn to a fixed-resolution 16:9 art surface, which is then
// integer-scaled and centered into whatever size the window happens to
// be. Chunky pixels stay chunky at any display size.
//
// # Quick start
//
//	p, err := chunky.NewPipeline(chunky.Config{ModeName: "spinners"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := ebiten.RunGame(p); err != nil {
//		log.Fatal(err)
//	}
//
// # Demo modes
//
// Four mutually exclusive modes are selectable at startup (see
// [ModeNames]): a field of thousands of [Spinner] points orbiting
// rational-parametrized circles, a jiggling [Blob] outline, a quadratic
// Bézier curve regenerated every frame through a precomputed [Basis],
// and rainbow static for eyeballing pixel size.
//
// The circle math deliberately avoids trigonometry: points come from the
// stereographic rational parametrization x(t) = (1-t²)/(1+t²),
// y(t) = 2t/(1+t²), which spaces points non-uniformly in angle. The
// resulting squirming quarter-turn animation is a feature, not a bug.
//
// [Ebitengine]: https://ebitengine.org
package chunky
