// Package cmd implements the pure CLI commands.
//
// The root command dispatches to subcommands (render, replay, config) after
// loading the optional project configuration and setting up logging.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/go-drift/pure/pkg/config"
	"github.com/go-drift/pure/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.3.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(env *Env, args []string) error
	SubCommands []*Command
}

// Env is what every command runs with.
type Env struct {
	Config config.Config
	Logger zerolog.Logger
	Stdout io.Writer
}

var rootCmd = &Command{
	Name:  "pure",
	Short: "pure - an Elm-style UI engine for Go",
	Long: `pure renders widget trees headlessly. It draws the demo application
into a display list or a terminal grid, and replays scripted input
against it.

Use "pure <command> --help" for more information about a command.`,
	Usage: "pure [--config FILE] [--log-level LEVEL] <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	return execute(args, os.Stdout)
}

func execute(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		printHelp(stdout, rootCmd)
		return nil
	}

	var configPath, logLevel string
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(stdout, rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "pure version %s (engine %s, built %s)\n", Version, config.EngineVersion, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--config", "--log-level":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a value", arg)
			}
			if arg == "--config" {
				configPath = args[i+1]
			} else {
				logLevel = args[i+1]
			}
			i++
		default:
			if v, ok := strings.CutPrefix(arg, "--config="); ok && len(filteredArgs) == 0 {
				configPath = v
				continue
			}
			if v, ok := strings.CutPrefix(arg, "--log-level="); ok && len(filteredArgs) == 0 {
				logLevel = v
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(stdout, rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(stdout, rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(stdout, cmd)
			return nil
		}
	}

	env, err := newEnv(configPath, logLevel, stdout)
	if err != nil {
		return err
	}
	prev := errors.SetHandler(&errors.LogHandler{Logger: &env.Logger, Verbose: env.Config.Debug.Verbose})
	defer errors.SetHandler(prev)

	return cmd.Run(env, cmdArgs)
}

// newEnv loads the configuration and builds the logger. An explicit path
// must exist; otherwise the project root is searched.
func newEnv(configPath, logLevel string, stdout io.Writer) (*Env, error) {
	var cfg config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = loadProjectConfig()
	}
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Debug.LogLevel = logLevel
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	logger := errors.NewConsoleLogger(level)
	logger.Debug().Str("engine", config.EngineVersion).Msg("configuration loaded")
	return &Env{Config: cfg, Logger: logger, Stdout: stdout}, nil
}

func loadProjectConfig() (config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Defaults(), nil
	}
	dir := cwd
	if root, err := config.FindProjectRoot(cwd); err == nil {
		dir = root
	}
	return config.LoadOptional(dir)
}

func printHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --config FILE        Use FILE instead of pure.yaml/pure.toml")
	fmt.Fprintln(w, "  --log-level LEVEL    Override debug.log_level")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  pure render                  Print the demo display list as YAML")
	fmt.Fprintln(w, "  pure render --term           Draw the demo in the terminal")
	fmt.Fprintln(w, "  pure replay script.yaml      Replay scripted input")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}
