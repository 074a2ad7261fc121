package main

import (
	"flag"

	"github.com/danmuck/termparam/internal/config"
	"github.com/danmuck/termparam/internal/logging"
	"github.com/danmuck/termparam/internal/protocol/param"
	"github.com/danmuck/termparam/internal/protocol/paramlist"
	"github.com/rs/zerolog/log"
)

const defaultProfilePath = "cmd/paramctl/terminal.toml"

func main() {
	output := flag.String("output", defaultProfilePath, "output path for the terminal profile template")
	validate := flag.Bool("validate", false, "validate an existing profile")
	input := flag.String("input", defaultProfilePath, "profile path for validation")
	force := flag.Bool("force", false, "overwrite existing profile")
	flag.Parse()

	logging.ConfigureRuntime()

	if *validate {
		if err := validateProfile(*input); err != nil {
			log.Fatal().Err(err).Str("path", *input).Msg("invalid profile")
		}
		log.Info().Str("path", *input).Msg("validated profile")
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		log.Fatal().Err(err).Str("path", *output).Msg("write template failed")
	}
	log.Info().Str("path", *output).Msg("wrote profile template")
}

// validateProfile loads path and checks that every bundle it names packs into
// a table the terminal would accept.
func validateProfile(path string) error {
	p, err := config.LoadProfile(path)
	if err != nil {
		return err
	}
	tbl := param.NewTable()
	if err := p.Apply(tbl); err != nil {
		return err
	}
	return paramlist.Validate(tbl)
}
