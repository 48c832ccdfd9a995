package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/DamienOReilly/reddit-stats/internal/di"
	"github.com/DamienOReilly/reddit-stats/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "enable debug mode (console logging)")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "reddit-stats: %s\n", err)
		os.Exit(1)
	}
}
