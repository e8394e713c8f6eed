// Package tilt is a pointer- and orientation-driven 3D tilt effect with an
// optional glare overlay, for [Ebitengine].
//
// A tilt effect rotates a rectangular [Surface] around its center so that it
// leans toward the pointer, and optionally paints a white gradient glare
// across it whose direction follows the pointer and whose strength grows
// toward the surface's bottom edge.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := tilt.NewScene(640, 480)
//	card := tilt.NewSurface("card", 240, 320)
//	card.X, card.Y = 200, 80
//	card.Color = tilt.Color{R: 0.2, G: 0.4, B: 0.9, A: 1}
//	scene.Root().AddChild(card)
//
//	opts := tilt.DefaultOptions()
//	opts.Glare = true
//	effect := tilt.Attach(scene, card, opts)
//	defer effect.Detach()
//
//	tilt.Run(scene, tilt.RunConfig{Title: "Tilt", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Lifecycle
//
// [Attach] binds pointer listeners (on the surface, an alternate target, or
// the document in full-page mode), window listeners for resize and device
// orientation, builds the glare overlay and moves the surface to its rest
// pose. Pointer moves are coalesced: however many arrive between two
// updates, one frame is applied using the latest position. [Effect.Detach]
// cancels pending work, clears inline style and removes every listener.
//
// # Values
//
// [MapValues] is the pure mapping from a raw sample to [Values]. Each
// applied frame is reported as an [EventTiltChange] on the surface, through
// [Options.OnChange], and to an [EntityStore] if the scene has one (see the
// tilt/ecs package for a [Donburi] adapter).
//
// # Headless use
//
// [Effect] depends only on the [Host] interface. [Scene] is the Ebitengine
// host; its scheduler is a deterministic [FrameLoop] that advances only when
// the scene updates, so effects can be driven by injected input
// ([Scene.InjectMove], [LoadTestScript]) without real devices.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package tilt
