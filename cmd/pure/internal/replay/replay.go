// Package replay drives a program through a scripted sequence of input and
// reports the messages it produced and the final frame.
package replay

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/pure/pkg/backend/record"
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/runtime"
	puretest "github.com/go-drift/pure/pkg/testing"
)

// Script is a replay file.
type Script struct {
	Window struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"window"`
	Steps []Step `yaml:"steps"`
}

// Step is one scripted input. Exactly one field is set.
type Step struct {
	Move    *Point        `yaml:"move,omitempty"`
	Press   *Point        `yaml:"press,omitempty"`
	Release *Point        `yaml:"release,omitempty"`
	Click   *Point        `yaml:"click,omitempty"`
	Scroll  *Scroll       `yaml:"scroll,omitempty"`
	Key     string        `yaml:"key,omitempty"`
	Type    string        `yaml:"type,omitempty"`
	Advance time.Duration `yaml:"advance,omitempty"`
	Resize  *Point        `yaml:"resize,omitempty"`
}

// Point is an [x, y] pair.
type Point [2]float64

func (p Point) point() geometry.Point { return geometry.Point{X: p[0], Y: p[1]} }

// Scroll is a wheel step.
type Scroll struct {
	At Point   `yaml:"at,flow"`
	DY float64 `yaml:"dy"`
}

// Load reads a script from path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a script and checks every step.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, step := range s.Steps {
		if n := step.count(); n != 1 {
			return nil, fmt.Errorf("step %d: want exactly one action, got %d", i+1, n)
		}
	}
	return &s, nil
}

func (s Step) count() int {
	n := 0
	for _, set := range []bool{
		s.Move != nil, s.Press != nil, s.Release != nil, s.Click != nil, s.Scroll != nil,
		s.Key != "", s.Type != "", s.Advance != 0, s.Resize != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// Result is the outcome of a replay.
type Result[S any] struct {
	Messages []string    `yaml:"messages"`
	State    S           `yaml:"state"`
	Ops      []record.Op `yaml:"ops"`
}

// Run replays script against program starting from state. The frame is
// recorded with recorder; its measurer decides the unit of the script's
// coordinates.
func Run[S, M any](ctx context.Context, program runtime.Program[S, M], state S, script *Script,
	recorder *record.Recorder, opts runtime.Options) (*Result[S], error) {
	clock := puretest.NewFakeClock()
	restore := clock.Install()
	defer restore()

	size := geometry.Size{Width: script.Window.Width, Height: script.Window.Height}
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("script window %vx%v must be positive", size.Width, size.Height)
	}
	result := &Result[S]{}
	in := runtime.NewInstance[S, M](ctx, logged[S, M]{program: program, log: &result.Messages}, state, size, recorder, opts)
	defer in.Close()

	cursor := event.Unavailable
	step := func(events ...event.Event) {
		for _, ev := range events {
			in.Queue(ev)
		}
		in.Step(cursor)
		in.Settle()
	}
	mouse := func(kind event.MouseKind, p Point) event.Mouse {
		cursor = event.CursorAt(p.point())
		return event.Mouse{Kind: kind, Button: event.ButtonLeft, Position: p.point()}
	}

	for _, s := range script.Steps {
		switch {
		case s.Move != nil:
			step(mouse(event.MouseMoved, *s.Move))
		case s.Press != nil:
			step(mouse(event.MousePressed, *s.Press))
		case s.Release != nil:
			step(mouse(event.MouseReleased, *s.Release))
		case s.Click != nil:
			step(mouse(event.MouseMoved, *s.Click))
			step(mouse(event.MousePressed, *s.Click))
			step(mouse(event.MouseReleased, *s.Click))
		case s.Scroll != nil:
			ev := mouse(event.MouseWheel, s.Scroll.At)
			ev.Delta = geometry.Vector{Y: s.Scroll.DY}
			step(ev)
		case s.Key != "":
			step(event.Keyboard{Kind: event.KeyPressed, Key: s.Key})
			step(event.Keyboard{Kind: event.KeyReleased, Key: s.Key})
		case s.Type != "":
			for _, r := range s.Type {
				step(event.Keyboard{Kind: event.KeyPressed, Key: string(r), Text: string(r)})
			}
		case s.Advance != 0:
			step(event.Window{Kind: event.WindowRedrawRequested, Now: clock.Advance(s.Advance)})
		case s.Resize != nil:
			in.Resize(geometry.Size{Width: s.Resize[0], Height: s.Resize[1]})
		}
	}

	recorder.Reset()
	in.Draw(recorder, cursor)
	result.State = *in.State()
	result.Ops = recorder.Ops()
	return result, nil
}

// logged records every message a program handles, including those produced
// by its tasks.
type logged[S, M any] struct {
	program runtime.Program[S, M]
	log     *[]string
}

func (l logged[S, M]) Update(state *S, msg M) runtime.Task[M] {
	*l.log = append(*l.log, fmt.Sprint(msg))
	return l.program.Update(state, msg)
}

func (l logged[S, M]) View(state *S) core.Widget[M] {
	return l.program.View(state)
}

func (l logged[S, M]) Subscription(state *S) runtime.Subscription[M] {
	if s, ok := l.program.(runtime.Subscriber[S, M]); ok {
		return s.Subscription(state)
	}
	return runtime.NoSubscription[M]()
}
