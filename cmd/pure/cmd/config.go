package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration after defaults, the project file, and
command-line overrides are applied.

Flags:
  --toml    Print TOML instead of YAML`,
		Usage: "pure config [--toml]",
		Run:   runConfig,
	})
}

func runConfig(env *Env, args []string) error {
	asTOML := false
	for _, arg := range args {
		if arg != "--toml" {
			return fmt.Errorf("unknown flag %q", arg)
		}
		asTOML = true
	}
	if asTOML {
		return toml.NewEncoder(env.Stdout).Encode(env.Config)
	}
	enc := yaml.NewEncoder(env.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(env.Config); err != nil {
		return err
	}
	return enc.Close()
}
