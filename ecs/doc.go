// Package ecs bridges sapling input events into an ECS world.
//
// The primary adapter is [NewDonburiSink], which publishes every event passed
// to [sapling.SceneTree.Dispatch] into a [Donburi] world as a typed event.
// Subscribe to [InputEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	tree.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
