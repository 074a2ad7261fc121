package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/termparam/internal/config"
	"github.com/danmuck/termparam/internal/logging"
	"github.com/danmuck/termparam/internal/protocol/param"
	"github.com/danmuck/termparam/internal/protocol/paramlist"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
)

func main() {
	profilePath := flag.String("profile", "", "terminal profile (TOML) to pack into a set-parameters body")
	decode := flag.String("decode", "", "hex set-parameters body to decode")
	showTable := flag.Bool("table", false, "render the resulting parameter table")
	asTOML := flag.Bool("toml", false, "print the bundles found in a decoded body as a profile")
	flag.Parse()

	logging.ConfigureRuntime()

	switch {
	case *profilePath != "":
		tbl, body, err := packProfile(*profilePath)
		if err != nil {
			log.Fatal().Err(err).Str("profile", *profilePath).Msg("pack failed")
		}
		fmt.Println(body)
		if *showTable {
			if err := renderTable(tbl); err != nil {
				log.Fatal().Err(err).Msg("render failed")
			}
		}
	case *decode != "":
		tbl, err := decodeBody(*decode)
		if err != nil {
			log.Fatal().Err(err).Msg("decode failed")
		}
		if err := renderTable(tbl); err != nil {
			log.Fatal().Err(err).Msg("render failed")
		}
		if *asTOML {
			p, err := config.ProfileFromTable(tbl)
			if err != nil {
				log.Fatal().Err(err).Msg("bundle parse failed")
			}
			if err := config.WriteProfile(os.Stdout, p); err != nil {
				log.Fatal().Err(err).Msg("write profile failed")
			}
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func packProfile(path string) (param.Table, string, error) {
	p, err := config.LoadProfile(path)
	if err != nil {
		return nil, "", err
	}
	tbl := param.NewTable()
	if err := p.Apply(tbl); err != nil {
		return nil, "", err
	}
	if err := paramlist.Validate(tbl); err != nil {
		return nil, "", err
	}
	body, err := paramlist.EncodeTable(tbl)
	if err != nil {
		return nil, "", err
	}
	log.Info().Int("items", len(tbl)).Int("bytes", len(body)).Msg("packed profile")
	return tbl, hexString(body), nil
}

func decodeBody(raw string) (param.Table, error) {
	body, err := parseHex(raw)
	if err != nil {
		return nil, err
	}
	tbl, err := paramlist.DecodeTable(body)
	if err != nil {
		return nil, err
	}
	if err := paramlist.Validate(tbl); err != nil {
		pterm.Warning.Println(err.Error())
	}
	return tbl, nil
}
