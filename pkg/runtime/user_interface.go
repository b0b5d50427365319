// Package runtime drives a widget tree: it reconciles the state tree,
// computes layout, routes events to overlays before the base tree, draws,
// and runs the tasks and subscriptions of a program.
package runtime

import (
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
	"github.com/go-drift/pure/pkg/overlay"
)

// Cache carries the state tree from one UserInterface to the next.
type Cache struct {
	tree core.Tree
	set  bool
}

// State is the outcome of an update cycle.
type State struct {
	// Outdated reports that a widget asked for the view to be rebuilt.
	Outdated bool
	// Redraw is the earliest redraw any widget requested.
	Redraw core.RedrawRequest
	// InputMethod is the first enabled input method request.
	InputMethod core.InputMethod
}

// UserInterface is a built widget tree ready to process events and draw.
type UserInterface[M any] struct {
	root   core.Widget[M]
	tree   core.Tree
	base   layout.Node
	bounds geometry.Size
}

// Build reconciles root against the cached state tree and lays it out in
// bounds.
func Build[M any](root core.Widget[M], bounds geometry.Size, cache Cache, renderer graphics.Renderer) *UserInterface[M] {
	tree := cache.tree
	if cache.set {
		core.Diff(&tree, root)
	} else {
		tree = core.NewTree(root)
	}
	ui := &UserInterface[M]{root: root, tree: tree, bounds: bounds}
	ui.relayout(renderer)
	return ui
}

func (ui *UserInterface[M]) relayout(renderer graphics.Renderer) {
	ui.base = ui.root.Layout(&ui.tree, renderer, layout.NewLimits(geometry.Size{}, ui.bounds))
}

// Relayout returns the interface laid out in new bounds, keeping its tree.
func (ui *UserInterface[M]) Relayout(bounds geometry.Size, renderer graphics.Renderer) *UserInterface[M] {
	next := &UserInterface[M]{root: ui.root, tree: ui.tree, bounds: bounds}
	next.relayout(renderer)
	return next
}

// IntoCache returns the state tree for the next Build.
func (ui *UserInterface[M]) IntoCache() Cache {
	return Cache{tree: ui.tree, set: true}
}

// Tree returns the state tree.
func (ui *UserInterface[M]) Tree() *core.Tree {
	return &ui.tree
}

// Layout returns the layout of the base tree.
func (ui *UserInterface[M]) Layout() layout.Layout {
	return layout.New(&ui.base)
}

// Bounds returns the size the interface was laid out in.
func (ui *UserInterface[M]) Bounds() geometry.Size {
	return ui.bounds
}

// overlay collects the current overlays into a nested stack.
func (ui *UserInterface[M]) overlay(renderer graphics.Renderer) (*overlay.Nested[M], layout.Node, bool) {
	root := ui.root.Overlay(&ui.tree, layout.New(&ui.base), renderer, geometry.Vector{})
	if root == nil {
		return nil, layout.Node{}, false
	}
	nested := overlay.NewNested(root)
	return nested, nested.Layout(renderer, ui.bounds), true
}

// baseCursor hides the cursor from the base tree while an overlay covers it.
func (ui *UserInterface[M]) baseCursor(nested *overlay.Nested[M], node *layout.Node,
	renderer graphics.Renderer, cursor event.Cursor) event.Cursor {
	if nested == nil {
		return cursor
	}
	if p, ok := cursor.Position(); ok && nested.IsOver(layout.New(node), renderer, p) {
		return event.Unavailable
	}
	return cursor
}

// Update processes events in order, overlays first, appending published
// messages to messages. It returns the cycle state and one status per
// event. An event an overlay captures never reaches the base tree.
func (ui *UserInterface[M]) Update(events []event.Event, cursor event.Cursor, renderer graphics.Renderer,
	clipboard core.Clipboard, messages *[]M) (State, []event.Status) {
	var state State
	statuses := make([]event.Status, len(events))

	nested, node, hasOverlay := ui.overlay(renderer)
	if hasOverlay {
		for i, ev := range events {
			shell := core.NewShell(messages)
			nested.Update(ev, layout.New(&node), cursor, renderer, clipboard, shell)
			statuses[i] = shell.EventStatus()
			ui.absorb(&state, shell)

			if shell.IsLayoutInvalid() {
				ui.relayout(renderer)
				nested, node, hasOverlay = ui.overlay(renderer)
				if !hasOverlay {
					break
				}
			}
		}
	}

	base := cursor
	if hasOverlay {
		base = ui.baseCursor(nested, &node, renderer, cursor)
	}
	viewport := geometry.RectangleWithSize(ui.bounds)
	for i, ev := range events {
		if statuses[i] == event.Captured {
			continue
		}
		shell := core.NewShell(messages)
		ui.root.Update(&ui.tree, ev, layout.New(&ui.base), base, renderer, clipboard, shell, viewport)
		statuses[i] = shell.EventStatus()
		ui.absorb(&state, shell)
		if shell.IsLayoutInvalid() {
			ui.relayout(renderer)
		}
	}
	return state, statuses
}

func (ui *UserInterface[M]) absorb(state *State, shell *core.Shell[M]) {
	state.Redraw = state.Redraw.Min(shell.RedrawRequest())
	state.InputMethod.Merge(shell.InputMethod())
	if shell.AreWidgetsInvalid() {
		state.Outdated = true
	}
}

// Draw paints the base tree and then the overlay stack, returning the
// cursor interaction to show.
func (ui *UserInterface[M]) Draw(renderer graphics.Renderer, style graphics.Style, cursor event.Cursor) event.Interaction {
	viewport := geometry.RectangleWithSize(ui.bounds)
	nested, node, hasOverlay := ui.overlay(renderer)
	base := cursor
	if hasOverlay {
		base = ui.baseCursor(nested, &node, renderer, cursor)
	}

	ui.root.Draw(&ui.tree, renderer, style, layout.New(&ui.base), base, viewport)
	interaction := ui.root.MouseInteraction(&ui.tree, layout.New(&ui.base), base, viewport, renderer)
	if !hasOverlay {
		return interaction
	}

	l := layout.New(&node)
	nested.Draw(renderer, style, l, cursor)
	if overlayInteraction := nested.MouseInteraction(l, cursor, renderer); overlayInteraction != event.InteractionNone {
		return overlayInteraction
	}
	return interaction
}
