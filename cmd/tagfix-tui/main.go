package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/handiism/tagfix/internal/config"
	"github.com/handiism/tagfix/internal/tui"
)

func main() {
	configPath := pflag.StringP("config", "c", config.DefaultPath(), "path to config file")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: tagfix-tui [-c config] [directory]")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	settings, err := config.Load(*configPath)
	if err == nil {
		err = settings.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settings, pflag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
