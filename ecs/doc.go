// Package ecs provides ECS adapters for primer's node lifecycle events.
//
// The primary adapter is [NewDonburiStore], which bridges node creation and
// disposal into a [Donburi] world as typed events. Subscribe to
// [NodeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
