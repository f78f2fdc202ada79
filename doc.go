// Package remainder animates integer division with remainder for
// [Ebitengine].
//
// An [Animator] deals a number of items to a number of recipients, one item
// every [AssignInterval] frames in strict round-robin order. Dealt items glide
// toward a stack above their recipient, and once the last item is dealt the
// quotient and remainder are shown.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	remainder.Run(remainder.Config{TotalItems: 10, TotalRecipients: 3},
//		remainder.RunConfig{Title: "10 ÷ 3"})
//
// For full control, build a [Game] with [NewGame] and pass it to
// ebiten.RunGame, or drive an Animator yourself:
//
//	a := remainder.NewAnimator(cfg, surface)
//	if err := a.Setup(containerWidth); err != nil {
//		// *ConfigError: TotalRecipients must be positive
//	}
//	for {
//		a.Frame() // once per tick
//	}
//
// # Surfaces
//
// The animator draws only through the [Surface] interface. [EbitenSurface]
// draws into an offscreen image, [Recorder] keeps the draw commands for
// headless runs and tests, and package tui draws Braille into a terminal.
//
// # State machine
//
// [PhaseSetup] → [PhaseDistributing] → [PhaseComplete]. The last transition
// happens when the final item is dealt and is permanent: further frames keep
// rendering the same summary. Zero items go straight to PhaseComplete.
//
// [Ebitengine]: https://ebitengine.org
package remainder
