package widgets

import (
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// ComboBox is a text field with a filtered drop-down menu of options. Typing
// narrows the menu with fuzzy matching; choosing an option publishes
// OnSelect(option).
type ComboBox[M any] struct {
	core.Base[M]
	Options     []string
	Selected    string
	Placeholder string
	OnSelect    func(string) M
	Width       layout.Length
	// TextSize is the font size. Defaults to 16 if zero.
	TextSize float64
	// MenuRows caps the rows shown in the menu.
	MenuRows int
	Padding  geometry.Padding

	Background  graphics.Color
	Highlight   graphics.Color
	BorderColor graphics.Color
}

// ComboBoxOf creates a combo box over options.
func ComboBoxOf[M any](options []string, selected string, onSelect func(string) M) ComboBox[M] {
	return ComboBox[M]{
		Options:     options,
		Selected:    selected,
		OnSelect:    onSelect,
		Width:       layout.Fixed(200),
		MenuRows:    6,
		Padding:     geometry.PaddingSymmetric(4, 6),
		Background:  graphics.ColorWhite,
		Highlight:   graphics.RGB(0xdd, 0xe6, 0xf7),
		BorderColor: graphics.ColorGray,
	}
}

// WithPlaceholder returns a copy showing text when nothing is selected.
func (c ComboBox[M]) WithPlaceholder(text string) ComboBox[M] {
	c.Placeholder = text
	return c
}

type comboState struct {
	focused bool
	open    bool
	query   string
	hovered int
}

func (s *comboState) close() {
	s.open = false
	s.query = ""
	s.hovered = 0
}

// options is the fuzzy.Source over a list of strings.
type options []string

func (o options) String(i int) string { return o[i] }
func (o options) Len() int            { return len(o) }

// Filter returns the options matching query, best match first. An empty
// query matches everything in order.
func (c ComboBox[M]) Filter(query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.Options
	}
	matches := fuzzy.FindFrom(query, options(c.Options))
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}

func (c ComboBox[M]) rowHeight(renderer graphics.Renderer) float64 {
	return renderer.MeasureText("M", textSize(c.TextSize)).Height + c.Padding.Vertical()
}

func (c ComboBox[M]) Size() layout.Sizing {
	return layout.Sizing{Width: c.Width, Height: layout.Shrink}
}

func (c ComboBox[M]) Tag() core.Tag     { return core.TagOf[comboState]() }
func (c ComboBox[M]) State() core.State { return core.NewState(comboState{}) }

func (c ComboBox[M]) Layout(_ *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	widest := renderer.MeasureText(c.Placeholder, textSize(c.TextSize)).Width
	for _, o := range c.Options {
		widest = max(widest, renderer.MeasureText(o, textSize(c.TextSize)).Width)
	}
	natural := geometry.Size{Width: widest + c.Padding.Horizontal(), Height: c.rowHeight(renderer)}
	return layout.NewNode(limits.Resolve(c.Width, layout.Shrink, natural))
}

func (c ComboBox[M]) Update(tree *core.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	_ graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M], _ geometry.Rectangle) {
	st := core.StateOf[comboState](tree)
	bounds := l.Bounds()

	if _, ok := pressPosition(ev); ok {
		switch {
		case shell.IsEventCaptured():
		case touchCursor(ev, cursor).IsOver(bounds):
			st.focused = true
			st.open = !st.open
			shell.CaptureEvent()
			shell.InvalidateLayout()
			shell.RequestRedraw()
		case st.focused || st.open:
			st.focused = false
			st.close()
			shell.InvalidateLayout()
			shell.RequestRedraw()
		}
		return
	}

	k, ok := ev.(event.Keyboard)
	if !ok || k.Kind != event.KeyPressed || !st.focused || shell.IsEventCaptured() {
		return
	}
	shell.RequestInputMethod(core.InputMethod{
		Enabled:  true,
		Position: geometry.Point{X: bounds.X, Y: bounds.Bottom()},
		Preedit:  st.query,
	})

	query, edited := st.query, false
	switch {
	case k.Key == event.KeyEscape:
		st.close()
	case k.Key == event.KeyEnter:
		matches := c.Filter(st.query)
		if st.open && st.hovered < len(matches) && c.OnSelect != nil {
			shell.Publish(c.OnSelect(matches[st.hovered]))
		}
		st.close()
	case k.Key == event.KeyBackspace:
		if _, size := utf8.DecodeLastRuneInString(st.query); size > 0 {
			st.query = st.query[:len(st.query)-size]
		}
		edited = true
	case k.Key == event.KeyDown:
		st.open = true
		st.hovered = min(st.hovered+1, max(len(c.Filter(st.query))-1, 0))
	case k.Key == event.KeyUp:
		st.hovered = max(st.hovered-1, 0)
	case k.Modifiers.Has(event.ModControl) && strings.EqualFold(k.Key, "v"):
		if pasted, ok := clipboard.Read(core.ClipboardStandard); ok {
			st.query += pasted
		}
		edited = true
	case k.Text != "" && !k.Modifiers.Has(event.ModControl):
		st.query += k.Text
		edited = true
	default:
		return
	}
	// Closing clears the query; only edits reopen the menu.
	if edited && st.query != query {
		st.open = true
		st.hovered = 0
	}
	shell.CaptureEvent()
	shell.InvalidateLayout()
	shell.RequestRedraw()
}

func (c ComboBox[M]) Draw(tree *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	_ event.Cursor, _ geometry.Rectangle) {
	st := core.StateOf[comboState](tree)
	bounds := l.Bounds()
	border := graphics.Border{Color: c.BorderColor, Width: 1, Radius: 2}
	if st.focused {
		border.Width = 2
	}
	renderer.FillQuad(graphics.Quad{Bounds: bounds, Border: border}, c.Background)

	content, color := c.Selected, style.TextColor
	switch {
	case st.focused && st.query != "":
		content = st.query
	case content == "":
		content, color = c.Placeholder, graphics.ColorGray
	}
	inner := bounds.Shrink(c.Padding)
	renderer.FillText(graphics.Text{Content: content, Bounds: inner.Size(), Size: textSize(c.TextSize)},
		inner.Position(), color, bounds)
}

func (c ComboBox[M]) MouseInteraction(_ *core.Tree, l layout.Layout, cursor event.Cursor,
	_ geometry.Rectangle, _ graphics.Renderer) event.Interaction {
	if cursor.IsOver(l.Bounds()) {
		return event.InteractionText
	}
	return event.InteractionNone
}

func (c ComboBox[M]) Overlay(tree *core.Tree, l layout.Layout, _ graphics.Renderer,
	translation geometry.Vector) core.Overlay[M] {
	st := core.StateOf[comboState](tree)
	if !st.open {
		return nil
	}
	matches := c.Filter(st.query)
	if len(matches) == 0 {
		return nil
	}
	return comboMenu[M]{
		combo:   c,
		state:   st,
		matches: matches,
		anchor:  l.Bounds().Translate(translation),
	}
}

// comboMenu is the drop-down list of a ComboBox.
type comboMenu[M any] struct {
	core.OverlayBase[M]
	combo   ComboBox[M]
	state   *comboState
	matches []string
	anchor  geometry.Rectangle
}

// Layout places the menu below the box, or above it when it would not fit.
func (m comboMenu[M]) Layout(renderer graphics.Renderer, bounds geometry.Size) layout.Node {
	rowH := m.combo.rowHeight(renderer)
	n := len(m.matches)
	if m.combo.MenuRows > 0 {
		n = min(n, m.combo.MenuRows)
	}
	rows := make([]layout.Node, n)
	for i := range rows {
		rows[i] = layout.NewNode(geometry.Size{Width: m.anchor.Width, Height: rowH}).
			MoveTo(geometry.Point{Y: float64(i) * rowH})
	}
	size := geometry.Size{Width: m.anchor.Width, Height: float64(n) * rowH}
	p := geometry.Point{X: m.anchor.X, Y: m.anchor.Bottom()}
	if p.Y+size.Height > bounds.Height && m.anchor.Y-size.Height >= 0 {
		p.Y = m.anchor.Y - size.Height
	}
	return layout.WithChildren(size, rows).MoveTo(p)
}

func (m comboMenu[M]) Update(ev event.Event, l layout.Layout, cursor event.Cursor,
	_ graphics.Renderer, _ core.Clipboard, shell *core.Shell[M]) {
	if shell.IsEventCaptured() {
		return
	}
	cursor = touchCursor(ev, cursor)
	for i, row := range l.Children() {
		if !cursor.IsOver(row.Bounds()) {
			continue
		}
		if m.state.hovered != i {
			m.state.hovered = i
			shell.RequestRedraw()
		}
		if _, ok := pressPosition(ev); ok {
			if m.combo.OnSelect != nil {
				shell.Publish(m.combo.OnSelect(m.matches[i]))
			}
			m.state.close()
			shell.CaptureEvent()
			shell.InvalidateLayout()
		}
		return
	}
	if _, ok := pressPosition(ev); ok && cursor.IsOver(l.Bounds()) {
		shell.CaptureEvent()
	}
}

func (m comboMenu[M]) Draw(renderer graphics.Renderer, style graphics.Style, l layout.Layout, _ event.Cursor) {
	renderer.FillQuad(graphics.Quad{
		Bounds: l.Bounds(),
		Border: graphics.Border{Color: m.combo.BorderColor, Width: 1},
	}, m.combo.Background)
	for i, row := range l.Children() {
		b := row.Bounds()
		if i == m.state.hovered {
			renderer.FillQuad(graphics.Quad{Bounds: b}, m.combo.Highlight)
		}
		inner := b.Shrink(m.combo.Padding)
		renderer.FillText(graphics.Text{Content: m.matches[i], Bounds: inner.Size(), Size: textSize(m.combo.TextSize)},
			inner.Position(), style.TextColor, b)
	}
}

func (m comboMenu[M]) MouseInteraction(l layout.Layout, cursor event.Cursor, _ graphics.Renderer) event.Interaction {
	if cursor.IsOver(l.Bounds()) {
		return event.InteractionPointer
	}
	return event.InteractionNone
}
