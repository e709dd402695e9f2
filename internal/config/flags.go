package config

import "github.com/alexflint/go-arg"

type args struct {
	Path   string `arg:"-p,--path" help:"directory to preload on the scan screen"`
	Filter string `arg:"-f,--filter" help:"scan filter pattern, e.g. *.log or *"`
}

func (args) Description() string {
	return "diskmaid - inventory a directory tree, sort it, and sweep files away"
}

func (args) Version() string {
	return "diskmaid 2.5.0"
}

// ParseFlags overlays command-line flags on the loaded configuration.
func ParseFlags(base Config) Config {
	var parsed args
	arg.MustParse(&parsed)

	if parsed.Path != "" {
		base.DefaultPath = parsed.Path
	}
	if parsed.Filter != "" {
		base.ScanFilter = parsed.Filter
	}
	return base
}
