package main

import (
	"github.com/rs/zerolog/log"

	"github.com/snapcore/go-tgl/internal/catsync"
	"github.com/snapcore/go-tgl/internal/config"
	"github.com/snapcore/go-tgl/internal/extract"
)

type sourceOptions struct {
	SourcePath string   `long:"source-path" env:"TGL_SOURCE_PATH" value-name:"DIR" description:"scan the source tree rooted at DIR"`
	Extensions []string `long:"extension" env:"TGL_EXTENSIONS" env-delim:"," value-name:"EXT" description:"scan files with extension EXT (default: go)"`
	Aliases    []string `long:"alias" env:"TGL_ALIASES" env-delim:"," value-name:"NAME" description:"also match Tr calls qualified by NAME"`
}

type generateCommand struct {
	global *options

	sourceOptions

	OutputPath      string   `long:"output-path" env:"TGL_OUTPUT_PATH" value-name:"DIR" description:"write catalogs to DIR (default: working directory)"`
	Languages       []string `long:"language" env:"TGL_LANGUAGES" env-delim:"," value-name:"LANG" description:"maintain the catalog of LANG (default: en_US)"`
	DefaultLanguage string   `long:"default-language" env:"TGL_DEFAULT_LANGUAGE" value-name:"LANG" description:"initialise new entries of LANG with their key"`
	Ext             string   `long:"ext" env:"TGL_EXT" choice:"tgl" choice:"egl" choice:"ftl" description:"catalog file extension (default: tgl)"`
}

func (cmd *generateCommand) settings() config.Generate {
	return config.Generate{
		SourcePath:      cmd.SourcePath,
		OutputPath:      cmd.OutputPath,
		Extensions:      cmd.Extensions,
		Languages:       cmd.Languages,
		DefaultLanguage: cmd.DefaultLanguage,
		Ext:             cmd.Ext,
		Aliases:         cmd.Aliases,
	}
}

func (cmd *generateCommand) Execute(args []string) error {
	cfg, err := cmd.global.load()
	if err != nil {
		return err
	}
	settings := cmd.settings().Merge(cfg.Generate).Merge(config.Defaults())
	if err := settings.Validate(); err != nil {
		return err
	}

	occs, err := scan(settings)
	if err != nil {
		return err
	}
	keys := extract.Keys(occs)
	log.Info().
		Int("count", len(keys)).
		Strs("keys", keys).
		Msg("Discovered keys")

	results, err := catsync.Sync(keys, catsync.Options{
		Languages:       settings.Languages,
		OutputDir:       settings.OutputPath,
		Ext:             settings.Ext,
		DefaultLanguage: settings.DefaultLanguage,
	})
	if err != nil {
		return err
	}
	for _, res := range results {
		if len(res.Added) > 0 {
			log.Info().Str("path", res.Path).Msg("Wrote translations")
		}
	}
	return nil
}

func (o *options) load() (*config.Config, error) {
	setupLogging(len(o.Verbose), nil)
	cfg, err := config.Load(o.Config)
	if err != nil {
		return nil, err
	}
	setupLogging(len(o.Verbose), cfg)
	return cfg, nil
}

func scan(settings config.Generate) ([]extract.Occurrence, error) {
	extractor := extract.New()
	extractor.Extensions = settings.Extensions
	extractor.Keyword.Aliases = append(extractor.Keyword.Aliases, settings.Aliases...)

	occs, err := extractor.Walk(settings.SourcePath)
	if err != nil {
		return nil, err
	}
	for _, occ := range occs {
		log.Debug().
			Str("file", occ.File).
			Int("line", occ.Line).
			Str("key", occ.Key).
			Msg("Found key")
	}
	return occs, nil
}
