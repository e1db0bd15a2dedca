// Package ebitenview runs a skilltree viewport on [Ebitengine]: it polls the
// mouse into a skilltree.Input, draws connections, node frames, path columns
// and tooltips with the vector package, and provides a ready-made game loop.
//
//	g, _ := skilltree.LoadGraph("tree.toml")
//	err := ebitenview.Run(g, ebitenview.RunConfig{
//		Title: "Skill Tree", Width: 800, Height: 600,
//	})
//
// Press F3 in a running viewer to toggle the camera debug line.
//
// [Ebitengine]: https://ebitengine.org
package ebitenview
