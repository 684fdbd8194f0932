package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jacobcolvin/yamlp/log"
	"github.com/jacobcolvin/yamlp/profile"
)

// Flags holds CLI flag names for yamlp, following the teacher's Flags/Config
// split (see log.Flags, profile.Flags): long names are configurable here,
// short names are fixed by the documented CLI surface (-F -S -W -f).
type Flags struct {
	ForceFlow string
	Shallow   string
	Width     string
	File      string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:   f,
		Log:     log.NewConfig(),
		Profile: profile.NewConfig(),
	}
}

// Config holds yamlp's parsed CLI flag values, composed with the teacher's
// [log.Config] and [profile.Config] for the ambient logging/profiling flags.
type Config struct {
	Flags Flags

	ForceFlow bool
	Shallow   bool
	Width     int
	File      string

	Log     *log.Config
	Profile *profile.Config
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		ForceFlow: "force-flow",
		Shallow:   "shallow",
		Width:     "width",
		File:      "file",
	}

	return f.NewConfig()
}

// RegisterFlags adds yamlp's own flags, plus the composed log/profile
// flags, to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&c.ForceFlow, c.Flags.ForceFlow, "F", false,
		"force flow style ({}/[]) on output containers")
	flags.BoolVarP(&c.Shallow, c.Flags.Shallow, "S", false,
		"shallow mode (accepted, but has no effect on the output)")
	flags.IntVarP(&c.Width, c.Flags.Width, "W", 0,
		"emitter line-wrap width (when unset: terminal width if stdout is a tty, else 0); "+
			"the emitter does not fold lines, so the output is unaffected")
	flags.StringVarP(&c.File, c.Flags.File, "f", "",
		"read YAML from file instead of standard input")

	c.Log.RegisterFlags(flags)
	c.Profile.RegisterFlags(flags)
}

// RegisterCompletions registers shell completions for the composed
// log/profile flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	if err := c.Log.RegisterCompletions(cmd); err != nil {
		return err
	}

	return c.Profile.RegisterCompletions(cmd)
}
