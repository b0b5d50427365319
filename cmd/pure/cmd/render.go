package cmd

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/pure/cmd/pure/internal/demo"
	"github.com/go-drift/pure/pkg/backend/record"
	"github.com/go-drift/pure/pkg/backend/term"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/runtime"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Draw one frame of the demo",
		Long: `Draw one frame of the demo application.

By default the frame is printed as a YAML display list measured with the
configured text measurer. With --term the frame is drawn into a grid of
terminal cells instead; --ansi adds colors.

Flags:
  --term            Draw into terminal cells
  --ansi            Color the terminal output (implies --term)
  --width N         Surface width (pixels, or cells with --term)
  --height N        Surface height
  --explain         Outline every layout node
  --about           Open the about dialog
  --count N         Initial counter value
  --fruit NAME      Initially selected fruit`,
		Usage: "pure render [--term|--ansi] [--width N] [--height N] [--explain] [--about]",
		Run:   runRender,
	})
}

type renderOptions struct {
	term, ansi, explain bool
	width, height       float64
	state               demo.State
}

func parseRenderArgs(args []string) (renderOptions, error) {
	var opts renderOptions
	value := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", args[i])
		}
		return args[i+1], nil
	}
	number := func(i int) (float64, error) {
		v, err := value(i)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%s: invalid number %q", args[i], v)
		}
		return n, nil
	}

	for i := 0; i < len(args); i++ {
		var err error
		switch args[i] {
		case "--term":
			opts.term = true
		case "--ansi":
			opts.term, opts.ansi = true, true
		case "--explain":
			opts.explain = true
		case "--about":
			opts.state.About = true
		case "--width":
			opts.width, err = number(i)
			i++
		case "--height":
			opts.height, err = number(i)
			i++
		case "--count":
			var n float64
			n, err = number(i)
			opts.state.Count = int(n)
			i++
		case "--fruit":
			opts.state.Fruit, err = value(i)
			i++
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// frame is the YAML form of a rendered frame.
type frame struct {
	Window [2]float64  `yaml:"window,flow"`
	Ops    []record.Op `yaml:"ops"`
}

func demoApp(env *Env, cells, explain bool) (demo.App, error) {
	color, err := env.Config.ExplainColor()
	if err != nil {
		return demo.App{}, err
	}
	return demo.App{Options: demo.Options{
		Cells:        cells,
		Explain:      explain || env.Config.Debug.Explain,
		ExplainColor: color,
	}}, nil
}

func runRender(env *Env, args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	app, err := demoApp(env, opts.term, opts.explain)
	if err != nil {
		return err
	}
	view := app.View(&opts.state)

	if opts.term {
		width, height := opts.width, opts.height
		if width == 0 {
			width = 60
		}
		if height == 0 {
			height = 16
		}
		canvas := term.NewCanvas(int(width), int(height))
		ui := runtime.Build(view, canvas.Size(), runtime.Cache{}, canvas)
		ui.Draw(canvas, graphics.Style{TextColor: graphics.ColorWhite}, event.Unavailable)
		env.Logger.Debug().Int("width", int(width)).Int("height", int(height)).Msg("rendered to cells")
		output := canvas.Plain()
		if opts.ansi {
			output = canvas.Render()
		}
		_, err := fmt.Fprintln(env.Stdout, output)
		return err
	}

	size := env.Config.Size()
	if opts.width > 0 {
		size.Width = opts.width
	}
	if opts.height > 0 {
		size.Height = opts.height
	}
	measurer, err := env.Config.Measurer()
	if err != nil {
		return err
	}
	defer measurer.Close()

	recorder := record.New(measurer)
	ui := runtime.Build(view, size, runtime.Cache{}, recorder)
	ui.Draw(recorder, graphics.DefaultStyle, event.Unavailable)
	env.Logger.Debug().Int("ops", len(recorder.Ops())).Msg("rendered display list")

	enc := yaml.NewEncoder(env.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(frame{Window: [2]float64{size.Width, size.Height}, Ops: recorder.Ops()}); err != nil {
		return err
	}
	return enc.Close()
}
