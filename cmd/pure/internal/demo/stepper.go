package demo

import (
	"strconv"

	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/layout"
	"github.com/go-drift/pure/pkg/widgets"
)

type stepEvent int

// stepper picks the increment size. It keeps the size privately and reports
// each change as a Stepped message.
type stepper struct {
	cells bool
}

func (s stepper) Update(state *int, ev stepEvent) (Msg, bool) {
	*state = max(max(*state, 1)+int(ev), 1)
	return Msg{Kind: Stepped, Value: strconv.Itoa(*state)}, true
}

func (s stepper) View(state *int) core.Widget[stepEvent] {
	step := max(*state, 1)
	button := func(label string, ev stepEvent) core.Widget[stepEvent] {
		b := widgets.ButtonOf[stepEvent](widgets.TextOf[stepEvent](label)).WithOnPress(ev)
		if s.cells {
			b = b.WithPadding(geometry.Padding{Left: 1, Right: 1})
		}
		return b
	}
	spacing := 8.0
	if s.cells {
		spacing = 1
	}
	return widgets.RowOf[stepEvent](
		widgets.TextOf[stepEvent]("step "+strconv.Itoa(step)),
		button("<", -1),
		button(">", 1),
	).WithSpacing(spacing).WithAlign(layout.Center)
}
