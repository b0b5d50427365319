// Package core provides the widget contract, the durable state tree, and the
// dispatch shell of the engine.
//
// An application describes its interface as a fresh tree of Widget values on
// every update cycle. Widget values are cheap and disposable; durable state
// lives in a parallel Tree that survives from cycle to cycle and is
// reconciled against each new widget tree by Diff.
//
// # State Trees
//
// Every widget reports a Tag naming the Go type of its state. Diff keeps a
// state cell only while the widget at the same position reports the same tag:
//
//	type counterState struct{ count int }
//
//	func (Counter[M]) Tag() core.Tag     { return core.TagOf[counterState]() }
//	func (Counter[M]) State() core.State { return core.NewState(counterState{}) }
//
//	func (c Counter[M]) Update(tree *core.Tree, ...) {
//	    state := core.StateOf[counterState](tree)
//	    state.count++
//	}
//
// A different tag at the same position discards the old subtree and creates
// default state. Children are reconciled by position with DiffChildren, or by
// key with DiffKeyed.
//
// # Event Dispatch
//
// Update receives a Shell scoped to the call. Widgets publish messages,
// capture events, request redraws, and invalidate layout through it.
// Containers deliver events to their children before reacting themselves and
// check IsEventCaptured before claiming an event.
//
// # Message Mapping
//
// Map adapts a Widget[A] into a Widget[B]. The wrapped widget runs against a
// local Shell whose effects are merged into the parent with MergeShell,
// translating every message in order.
//
// # Overlays
//
// A widget may return an Overlay to float content above the whole tree.
// Overlays are laid out against the viewport, receive events before the base
// tree, and are drawn after it. See package overlay for grouping and
// nesting.
//
// # Constructor Conventions
//
// Widgets are struct values built with literals or XxxOf helpers. Long-lived
// objects with behavior use NewX constructors returning pointers.
package core
