// Package demo is the sample application driven by the pure command.
package demo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-drift/pure/pkg/component"
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
	"github.com/go-drift/pure/pkg/runtime"
	"github.com/go-drift/pure/pkg/widgets"
)

// Kind identifies a demo message.
type Kind int

const (
	Increment Kind = iota
	Decrement
	Pick
	OpenAbout
	CloseAbout
	Save
	Saved
	Stepped
)

var kindNames = map[Kind]string{
	Increment:  "increment",
	Decrement:  "decrement",
	Pick:       "pick",
	OpenAbout:  "open-about",
	CloseAbout: "close-about",
	Save:       "save",
	Saved:      "saved",
	Stepped:    "stepped",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Msg is a demo message.
type Msg struct {
	Kind  Kind
	Value string
}

func (m Msg) String() string {
	if m.Value == "" {
		return m.Kind.String()
	}
	return m.Kind.String() + ":" + m.Value
}

// Fruits are the combo box options.
var Fruits = []string{"apple", "apricot", "banana", "blueberry", "cherry", "grape", "mango"}

// State is the demo state.
type State struct {
	Count  int
	Step   int
	Fruit  string
	About  bool
	Status string
}

// Options tune the demo for a surface.
type Options struct {
	// Cells lays the demo out for a terminal grid instead of pixels.
	Cells        bool
	Explain      bool
	ExplainColor graphics.Color
}

// App is the demo program.
type App struct {
	Options Options
}

// Update applies msg to state.
func (a App) Update(state *State, msg Msg) runtime.Task[Msg] {
	switch msg.Kind {
	case Increment:
		state.Count += max(state.Step, 1)
	case Decrement:
		state.Count -= max(state.Step, 1)
	case Stepped:
		state.Step, _ = strconv.Atoi(msg.Value)
	case Pick:
		state.Fruit = msg.Value
	case OpenAbout:
		state.About = true
	case CloseAbout:
		state.About = false
	case Save:
		count := state.Count
		state.Status = "saving"
		return runtime.Perform(func(context.Context) (int, error) {
			return count, nil
		}, func(n int) Msg {
			return Msg{Kind: Saved, Value: strconv.Itoa(n)}
		})
	case Saved:
		state.Status = "saved " + msg.Value
	}
	return runtime.None[Msg]()
}

func (a App) spacing() float64 {
	if a.Options.Cells {
		return 1
	}
	return 8
}

func (a App) button(label string, msg Msg) widgets.Button[Msg] {
	b := widgets.ButtonOf[Msg](widgets.TextOf[Msg](label)).WithOnPress(msg)
	if a.Options.Cells {
		b = b.WithPadding(geometry.Padding{Left: 1, Right: 1})
	}
	return b
}

// View builds the demo interface.
func (a App) View(state *State) core.Widget[Msg] {
	plus := widgets.TooltipOf[Msg](
		a.button("+", Msg{Kind: Increment}),
		widgets.TextOf[Msg]("increment").WithColor(graphics.ColorWhite),
		widgets.TooltipBottom,
	)
	picker := widgets.ComboBoxOf(Fruits, state.Fruit, func(f string) Msg {
		return Msg{Kind: Pick, Value: f}
	}).WithPlaceholder("fruit")
	if a.Options.Cells {
		picker.Padding = geometry.Padding{}
		picker.Width = layout.Fixed(20)
	}

	body := widgets.ColumnOf[Msg](
		widgets.TextOf[Msg](fmt.Sprintf("count: %d", state.Count)),
		widgets.RowOf[Msg](
			plus,
			a.button("-", Msg{Kind: Decrement}),
			a.button("save", Msg{Kind: Save}),
			a.button("about", Msg{Kind: OpenAbout}),
		).WithSpacing(a.spacing()),
		component.New[Msg, stepEvent, int](stepper{cells: a.Options.Cells}),
		picker,
		widgets.TextOf[Msg](state.Status),
	).WithSpacing(a.spacing()).WithPadding(geometry.PaddingAll(a.spacing()))

	var dialog core.Widget[Msg]
	if state.About {
		dialog = widgets.ContainerOf[Msg](
			widgets.ColumnOf[Msg](
				widgets.TextOf[Msg]("pure demo"),
				a.button("close", Msg{Kind: CloseAbout}),
			).WithSpacing(a.spacing()),
		).WithPadding(geometry.PaddingAll(a.spacing())).
			WithBackground(graphics.ColorWhite).
			WithBorder(graphics.Border{Color: graphics.ColorGray, Width: 1})
	}

	var root core.Widget[Msg] = widgets.ModalOf[Msg](body, dialog).
		WithOnDismiss(Msg{Kind: CloseAbout})
	if a.Options.Explain {
		root = core.Explain(root, a.Options.ExplainColor)
	}
	return root
}

var _ runtime.Program[State, Msg] = App{}
