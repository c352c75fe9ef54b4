package cli

import "flag"

// NewFlagSet returns a ContinueOnError FlagSet whose Usage prints the help screen.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { PrintUsage(fs.Output(), name) }
	return fs
}
