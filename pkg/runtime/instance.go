package runtime

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
)

// Program is an application: a state S updated by messages M and rendered
// by a view.
type Program[S, M any] interface {
	Update(state *S, msg M) Task[M]
	View(state *S) core.Widget[M]
}

// Subscriber is implemented by programs that listen to external streams.
type Subscriber[S, M any] interface {
	Subscription(state *S) Subscription[M]
}

// Options configures an Instance.
type Options struct {
	Clipboard     core.Clipboard
	Logger        *zerolog.Logger
	MaxConcurrent int
	Style         graphics.Style
}

// Instance runs a Program headlessly: it queues events, feeds published and
// task messages to Update, rebuilds the view, and keeps subscriptions
// running.
type Instance[S, M any] struct {
	program   Program[S, M]
	state     *S
	renderer  graphics.Renderer
	clipboard core.Clipboard
	style     graphics.Style
	logger    zerolog.Logger

	ctx      context.Context
	cancel   context.CancelFunc
	executor *Executor[M]
	tracker  *Tracker[M]

	mu      sync.Mutex
	inbox   []M
	wake    chan struct{}
	events  []event.Event
	ui      *UserInterface[M]
	redraw  core.RedrawRequest
	updates int
}

// NewInstance builds the first view of program with state in bounds.
func NewInstance[S, M any](ctx context.Context, program Program[S, M], state S, bounds geometry.Size,
	renderer graphics.Renderer, opts Options) *Instance[S, M] {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	clipboard := opts.Clipboard
	if clipboard == nil {
		clipboard = core.NullClipboard{}
	}
	style := opts.Style
	if style == (graphics.Style{}) {
		style = graphics.DefaultStyle
	}

	ctx, cancel := context.WithCancel(ctx)
	in := &Instance[S, M]{
		program:   program,
		state:     &state,
		renderer:  renderer,
		clipboard: clipboard,
		style:     style,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		tracker:   NewTracker[M](logger),
		wake:      make(chan struct{}, 1),
		redraw:    core.RedrawNextFrame(),
	}
	in.executor = NewExecutor(ctx, opts.MaxConcurrent, in.deliver, logger)
	in.ui = Build(program.View(in.state), bounds, Cache{}, renderer)
	in.subscribe()
	return in
}

// deliver queues a message from a task or subscription.
func (in *Instance[S, M]) deliver(m M) {
	in.mu.Lock()
	in.inbox = append(in.inbox, m)
	in.mu.Unlock()
	select {
	case in.wake <- struct{}{}:
	default:
	}
}

// Wake is signalled whenever a background message arrives.
func (in *Instance[S, M]) Wake() <-chan struct{} {
	return in.wake
}

// State returns the program state. It must not be modified concurrently
// with Step.
func (in *Instance[S, M]) State() *S {
	return in.state
}

// Interface returns the current user interface.
func (in *Instance[S, M]) Interface() *UserInterface[M] {
	return in.ui
}

// Updates returns how many messages Update has handled.
func (in *Instance[S, M]) Updates() int {
	return in.updates
}

// Queue adds an event for the next Step.
func (in *Instance[S, M]) Queue(ev event.Event) {
	in.events = append(in.events, ev)
}

// Resize lays the view out in new bounds.
func (in *Instance[S, M]) Resize(bounds geometry.Size) {
	in.ui = in.ui.Relayout(bounds, in.renderer)
	in.redraw = core.RedrawNextFrame()
}

// Step processes queued events and pending background messages. It returns
// the messages handled and the redraw the interface wants next.
func (in *Instance[S, M]) Step(cursor event.Cursor) ([]M, core.RedrawRequest) {
	var messages []M
	events := in.events
	in.events = nil

	state, _ := in.ui.Update(events, cursor, in.renderer, in.clipboard, &messages)
	in.redraw = in.redraw.Min(state.Redraw)

	in.mu.Lock()
	messages = append(messages, in.inbox...)
	in.inbox = nil
	in.mu.Unlock()

	if len(messages) == 0 && !state.Outdated {
		return nil, in.redraw
	}
	for _, m := range messages {
		in.updates++
		in.executor.Spawn(in.program.Update(in.state, m))
	}
	in.rebuild()
	return messages, in.redraw
}

func (in *Instance[S, M]) rebuild() {
	bounds := in.ui.Bounds()
	in.ui = Build(in.program.View(in.state), bounds, in.ui.IntoCache(), in.renderer)
	in.redraw = core.RedrawNextFrame()
	in.subscribe()
}

func (in *Instance[S, M]) subscribe() {
	s, ok := in.program.(Subscriber[S, M])
	if !ok {
		return
	}
	in.tracker.Update(in.ctx, s.Subscription(in.state), in.deliver)
}

// Draw paints the interface and clears the pending redraw.
func (in *Instance[S, M]) Draw(renderer graphics.Renderer, cursor event.Cursor) event.Interaction {
	in.redraw = core.RedrawWait()
	return in.ui.Draw(renderer, in.style, cursor)
}

// Settle waits for spawned tasks to finish and processes their messages,
// repeating until no task is left. Subscriptions keep running.
func (in *Instance[S, M]) Settle() {
	for {
		in.executor.Wait()
		in.mu.Lock()
		pending := len(in.inbox)
		in.mu.Unlock()
		if pending == 0 {
			return
		}
		in.Step(event.Unavailable)
	}
}

// Close stops tasks and subscriptions.
func (in *Instance[S, M]) Close() error {
	in.tracker.Close()
	err := in.executor.Close()
	in.cancel()
	return err
}
