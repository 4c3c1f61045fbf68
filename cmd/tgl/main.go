package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/snapcore/go-tgl/internal/config"
)

var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

type options struct {
	Verbose []bool `short:"v" long:"verbose" description:"show debug output, repeat for more"`

	Config string `long:"config" env:"TGL_CONFIG" default:"tgl.yaml" value-name:"FILE" description:"read settings from the YAML file FILE"`
}

func newParser() *flags.Parser {
	opts := &options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.ShortDescription = "Maintain flat translation catalogs"
	parser.LongDescription = "tgl collects the keys passed to Tr calls in a source tree " +
		"and appends the ones missing from each language's catalog."

	if _, err := parser.AddCommand("generate",
		"Append new keys to the catalogs",
		"Scan a source tree for translation calls and append every key not yet present to the catalog of each language.",
		&generateCommand{global: opts}); err != nil {
		panic(err)
	}
	if _, err := parser.AddCommand("extract",
		"Print the keys found in a source tree",
		"Scan a source tree for translation calls and print each distinct key once, in the order found.",
		&extractCommand{global: opts}); err != nil {
		panic(err)
	}
	return parser
}

func run(args []string) error {
	// Variables from .env must be in place before flags read the
	// environment.
	if err := config.LoadEnv(); err != nil {
		return err
	}
	_, err := newParser().ParseArgs(args)
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Fprintln(Stdout, flagsErr.Message)
				os.Exit(0)
			}
			fmt.Fprintln(Stderr, "error:", flagsErr.Message)
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("Failed")
	}
}
