package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gostonefire/hashmap"
	"github.com/gostonefire/hashmap/internal/input"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func main() {
	fileName := flag.String("file", "", "file with one value per line, or a .json/.jsonc array of strings")
	debug := flag.Bool("debug", false, "log debug information")
	flag.Parse()

	logger := zap.NewNop()
	if *debug {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to create logger: %s\n", err)
			os.Exit(1)
		}
	}
	defer func() { _ = logger.Sync() }()

	if *fileName == "" {
		flag.Usage()
		os.Exit(2)
	}

	values, err := input.ReadValues(afero.NewOsFs(), *fileName)
	if err != nil {
		logger.Error("unable to read values", zap.String("file", *fileName), zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(values) == 0 {
		fmt.Fprintf(os.Stderr, "no values in %s\n", *fileName)
		os.Exit(1)
	}

	logger.Debug("values read", zap.String("file", *fileName), zap.Int("count", len(values)))

	modes, frequency := hashmap.FindMode(values, hashmap.WithLogger(logger))

	fmt.Printf("mode: %s\n", strings.Join(modes, ", "))
	fmt.Printf("frequency: %d\n", frequency)
}
