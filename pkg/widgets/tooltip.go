package widgets

import (
	"math"
	"time"

	"github.com/go-drift/pure/pkg/animation"
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
	"github.com/go-drift/pure/pkg/overlay"
)

// TooltipPosition places a tooltip relative to its content.
type TooltipPosition int

const (
	TooltipTop TooltipPosition = iota
	TooltipBottom
	TooltipLeft
	TooltipRight
	TooltipFollowCursor
)

// Tooltip shows Tip in an overlay while the cursor hovers Content. The tip
// appears after Delay and fades in over Fade. It never captures events.
type Tooltip[M any] struct {
	Content  core.Widget[M]
	Tip      core.Widget[M]
	Position TooltipPosition
	Gap      float64
	Padding  geometry.Padding
	Delay    time.Duration
	Fade     time.Duration
	// Background is drawn behind the tip.
	Background graphics.Color
}

// TooltipOf creates a tooltip with a short fade and no delay.
func TooltipOf[M any](content, tip core.Widget[M], position TooltipPosition) Tooltip[M] {
	return Tooltip[M]{
		Content:    content,
		Tip:        tip,
		Position:   position,
		Gap:        4,
		Padding:    geometry.PaddingAll(4),
		Fade:       150 * time.Millisecond,
		Background: graphics.RGBA(0x20, 0x20, 0x20, 0.9),
	}
}

// WithDelay returns a copy that waits d before showing the tip.
func (t Tooltip[M]) WithDelay(d time.Duration) Tooltip[M] {
	t.Delay = d
	return t
}

type tooltipState struct {
	hovered bool
	since   time.Time
	cursor  geometry.Point
	fade    animation.Animation
}

// shown reports whether the tip is visible at now.
func (s *tooltipState) shown(now time.Time, delay time.Duration) bool {
	return s.hovered && !now.Before(s.since.Add(delay))
}

func (t Tooltip[M]) Size() layout.Sizing { return t.Content.Size() }
func (t Tooltip[M]) Tag() core.Tag       { return core.TagOf[tooltipState]() }
func (t Tooltip[M]) State() core.State   { return core.NewState(tooltipState{}) }

func (t Tooltip[M]) Children() []core.Tree {
	return []core.Tree{core.NewTree(t.Content), core.NewTree(t.Tip)}
}

func (t Tooltip[M]) Diff(tree *core.Tree) {
	core.DiffChildren(tree, []core.Widget[M]{t.Content, t.Tip})
}

func (t Tooltip[M]) Layout(tree *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	content := t.Content.Layout(&tree.Children[0], renderer, limits)
	return layout.WithChildren(content.Size(), []layout.Node{content})
}

func (t Tooltip[M]) Update(tree *core.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) {
	t.Content.Update(&tree.Children[0], ev, l.Child(0), cursor, renderer, clipboard, shell, viewport)

	st := core.StateOf[tooltipState](tree)
	now := animation.Now()
	if w, ok := ev.(event.Window); ok && w.Kind == event.WindowRedrawRequested {
		now = w.Now
	}
	over := cursor.IsOver(l.Bounds())
	if p, ok := cursor.Position(); ok && over {
		if t.Position == TooltipFollowCursor && p != st.cursor {
			shell.RequestRedraw()
		}
		st.cursor = p
	}

	changed := over != st.hovered
	if changed {
		st.hovered = over
		st.since = now
		if over {
			st.fade = animation.Settled(0).Start(now.Add(t.Delay), 1, t.Fade, animation.EaseOut)
		} else {
			st.fade = animation.Settled(0)
		}
		shell.InvalidateLayout()
	}

	switch {
	case st.hovered && !st.shown(now, t.Delay):
		shell.RequestRedrawAt(core.RedrawAt(st.since.Add(t.Delay)))
	case st.hovered && st.fade.IsAnimating(now):
		shell.RequestRedraw()
	case changed:
		shell.RequestRedraw()
	}
}

func (t Tooltip[M]) Draw(tree *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	t.Content.Draw(&tree.Children[0], renderer, style, l.Child(0), cursor, viewport)
}

func (t Tooltip[M]) MouseInteraction(tree *core.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	return t.Content.MouseInteraction(&tree.Children[0], l.Child(0), cursor, viewport, renderer)
}

func (t Tooltip[M]) Overlay(tree *core.Tree, l layout.Layout, renderer graphics.Renderer,
	translation geometry.Vector) core.Overlay[M] {
	inner := t.Content.Overlay(&tree.Children[0], l.Child(0), renderer, translation)
	st := core.StateOf[tooltipState](tree)
	now := animation.Now()
	if !st.shown(now, t.Delay) {
		return inner
	}
	tip := tooltipOverlay[M]{
		tooltip: t,
		tree:    &tree.Children[1],
		anchor:  l.Bounds().Translate(translation),
		cursor:  st.cursor.Add(translation),
		alpha:   st.fade.Value(now),
	}
	return overlay.NewGroup(inner, tip).Collapse()
}

type tooltipOverlay[M any] struct {
	core.OverlayBase[M]
	tooltip Tooltip[M]
	tree    *core.Tree
	anchor  geometry.Rectangle
	cursor  geometry.Point
	alpha   float64
}

func (o tooltipOverlay[M]) Layout(renderer graphics.Renderer, bounds geometry.Size) layout.Node {
	t := o.tooltip
	limits := layout.NewLimits(geometry.Size{}, bounds).ShrinkPadding(t.Padding)
	tip := t.Tip.Layout(o.tree, renderer, limits)
	size := tip.Size().Expand(t.Padding)

	var p geometry.Point
	switch t.Position {
	case TooltipTop:
		p = geometry.Point{X: o.anchor.X + (o.anchor.Width-size.Width)/2, Y: o.anchor.Y - size.Height - t.Gap}
	case TooltipBottom:
		p = geometry.Point{X: o.anchor.X + (o.anchor.Width-size.Width)/2, Y: o.anchor.Bottom() + t.Gap}
	case TooltipLeft:
		p = geometry.Point{X: o.anchor.X - size.Width - t.Gap, Y: o.anchor.Y + (o.anchor.Height-size.Height)/2}
	case TooltipRight:
		p = geometry.Point{X: o.anchor.Right() + t.Gap, Y: o.anchor.Y + (o.anchor.Height-size.Height)/2}
	case TooltipFollowCursor:
		p = o.cursor.Add(geometry.Vector{X: t.Gap, Y: t.Gap})
	}
	p.X = math.Max(0, math.Min(p.X, bounds.Width-size.Width))
	p.Y = math.Max(0, math.Min(p.Y, bounds.Height-size.Height))

	tip = tip.MoveTo(geometry.Point{X: t.Padding.Left, Y: t.Padding.Top})
	return layout.WithChildren(size, []layout.Node{tip}).MoveTo(p)
}

func (o tooltipOverlay[M]) Draw(renderer graphics.Renderer, style graphics.Style, l layout.Layout, cursor event.Cursor) {
	renderer.FillQuad(graphics.Quad{Bounds: l.Bounds(), Border: graphics.Border{Radius: 3}},
		o.tooltip.Background.ScaleAlpha(o.alpha))
	style.TextColor = style.TextColor.ScaleAlpha(o.alpha)
	o.tooltip.Tip.Draw(o.tree, renderer, style, l.Child(0), cursor, l.Bounds())
}

// IsOver is always false: a tooltip never hides what is beneath it.
func (o tooltipOverlay[M]) IsOver(layout.Layout, graphics.Renderer, geometry.Point) bool {
	return false
}
