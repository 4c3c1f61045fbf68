package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/snapcore/go-tgl/internal/config"
	"github.com/snapcore/go-tgl/internal/extract"
)

var formatTime = func() string {
	return time.Now().Format("2006-01-02 15:04-0700")
}

type extractCommand struct {
	global *options

	sourceOptions

	Format      string `long:"format" choice:"keys" choice:"pot" default:"keys" description:"print distinct keys one per line, or a gettext PO template"`
	SortOutput  bool   `short:"s" long:"sort-output" description:"sort keys"`
	PackageName string `long:"package-name" value-name:"PACKAGE" description:"set package name in PO template"`
}

func (cmd *extractCommand) Execute(args []string) error {
	cfg, err := cmd.global.load()
	if err != nil {
		return err
	}
	settings := config.Generate{
		SourcePath: cmd.SourcePath,
		Extensions: cmd.Extensions,
		Aliases:    cmd.Aliases,
	}.Merge(cfg.Generate).Merge(config.Defaults())
	if err := settings.Validate(); err != nil {
		return err
	}

	occs, err := scan(settings)
	if err != nil {
		return err
	}

	if cmd.Format == "pot" {
		return extract.WritePOT(Stdout, occs, extract.POTHeader{
			PackageName:  cmd.PackageName,
			CreationDate: formatTime(),
		}, cmd.SortOutput)
	}

	keys := uniqueKeys(occs)
	if cmd.SortOutput {
		sort.Strings(keys)
	}
	for _, key := range keys {
		fmt.Fprintln(Stdout, key)
	}
	return nil
}

func uniqueKeys(occs []extract.Occurrence) []string {
	seen := make(map[string]bool, len(occs))
	var keys []string
	for _, occ := range occs {
		if seen[occ.Key] {
			continue
		}
		seen[occ.Key] = true
		keys = append(keys, occ.Key)
	}
	return keys
}
