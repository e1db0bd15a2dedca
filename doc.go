// Package skilltree is a viewport camera and interaction engine for
// node-graph browsers such as game skill trees.
//
// It keeps a clamped 2D pan/zoom camera over a set of graph nodes, converts
// between screen, viewport and world coordinates, resolves the node under the
// pointer with throttled change-only hover events, tells clicks from drags,
// and animates the focus moving along a linear path of nodes.
//
// The package never draws and never imports a graphics backend. Rendering and
// device polling live in skilltree/ebitenview; ECS integration lives in the
// skilltree/ecs submodule (via a [Donburi] adapter).
//
// # Quick start
//
// Load a graph, create a [Viewport] and feed it input once per frame:
//
//	g, _ := skilltree.LoadGraph("tree.toml")
//	vp, _ := skilltree.NewViewport(0, 0, 800, 600, g, skilltree.DefaultConfig())
//	vp.OnHover(func(ctx skilltree.HoverContext) { ... })
//	vp.OnActivate(func(ctx skilltree.ActivateContext) { ... })
//
//	in := skilltree.NewInput(vp)
//	// every frame:
//	in.Feed(skilltree.PointerState{X: mx, Y: my, Pressed: down, Wheel: wy, Inside: true})
//
// Within a frame, input mutates the camera first; hover is polled afterwards
// against the updated transform, and only then should the frame be drawn.
//
// # Building blocks
//
// The pieces a Viewport composes are usable on their own: [Camera],
// [ComputeContentBounds], [HitTest], [HoverTracker], [DragState],
// [PathAnimator] and [PathView]. All time-dependent calls take an explicit
// time.Time so they can be driven by a fake clock.
//
// [Donburi]: https://github.com/yohamta/donburi
package skilltree
