// Package ecs provides ECS adapters for tilt.
//
// [NewDonburiStore] bridges tiltChange notifications into a [Donburi] world
// as typed events. Only surfaces with a non-zero EntityID are forwarded.
// Subscribe to [TiltChangeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
