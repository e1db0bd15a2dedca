// Package ecs bridges skilltree viewport events into a [Donburi] world.
//
// [NewDonburiStore] publishes every hover, activation, path advance, pan and
// zoom as a typed event. Subscribe to [InteractionEventType] in your systems
// and drain it with ProcessEvents once per tick.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	viewport.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
