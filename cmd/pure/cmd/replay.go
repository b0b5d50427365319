package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/pure/cmd/pure/internal/demo"
	"github.com/go-drift/pure/cmd/pure/internal/replay"
	"github.com/go-drift/pure/pkg/backend/record"
	"github.com/go-drift/pure/pkg/backend/term"
	"github.com/go-drift/pure/pkg/runtime"
	"github.com/go-drift/pure/pkg/text"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay scripted input against the demo",
		Long: `Replay a YAML script of input events against the demo application and
print every handled message, the final state, and the final display list.

A script looks like:

  window: {width: 400, height: 300}
  steps:
    - click: [22, 45]
    - type: "ban"
    - key: Enter
    - scroll: {at: [100, 100], dy: -20}
    - advance: 500ms

With --term, coordinates are terminal cells and text is measured in cells.`,
		Usage: "pure replay [--term] <script.yaml>",
		Run:   runReplay,
	})
}

func runReplay(env *Env, args []string) error {
	cells := false
	var path string
	for _, arg := range args {
		switch {
		case arg == "--term":
			cells = true
		case path == "":
			path = arg
		default:
			return fmt.Errorf("unexpected argument %q", arg)
		}
	}
	if path == "" {
		return fmt.Errorf("script is required\n\nUsage: pure replay [--term] <script.yaml>")
	}

	script, err := replay.Load(path)
	if err != nil {
		return err
	}
	app, err := demoApp(env, cells, false)
	if err != nil {
		return err
	}

	var recorder *record.Recorder
	if cells {
		recorder = record.New(text.CellMeasurer{})
	} else {
		measurer, err := env.Config.Measurer()
		if err != nil {
			return err
		}
		defer measurer.Close()
		recorder = record.New(measurer)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env.Logger.Info().Str("script", path).Int("steps", len(script.Steps)).Msg("replaying")
	result, err := replay.Run[demo.State, demo.Msg](ctx, app, demo.State{}, script, recorder, runtime.Options{
		Clipboard:     &term.SystemClipboard{},
		Logger:        &env.Logger,
		MaxConcurrent: env.Config.Tasks.MaxConcurrent,
	})
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(env.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}
