package main

import (
	"debug/elf"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"limine/src/tools/reqscan"
)

var manifest = flag.String("m", "", "manifest file (toml) to check the image against")
var verbose = flag.Bool("v", false, "log every request found, not just violations")

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: reqscan [-v] [-m manifest.toml] <image.elf>...")
		os.Exit(2)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	var m *reqscan.Manifest
	if *manifest != "" {
		var err error
		m, err = reqscan.LoadManifest(*manifest)
		if err != nil {
			log.Fatal().Err(err).Str("manifest", *manifest).Msg("cannot load manifest")
		}
	}

	failed := false
	for _, path := range flag.Args() {
		if !scanOne(log, path, m) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func scanOne(log zerolog.Logger, path string, m *reqscan.Manifest) bool {
	log = log.With().Str("image", path).Logger()

	f, err := elf.Open(path)
	if err != nil {
		log.Error().Err(err).Msg("cannot open image")
		return false
	}
	defer f.Close()

	rep, err := reqscan.Scan(f)
	if err != nil {
		log.Error().Err(err).Msg("scan failed")
		return false
	}

	for _, req := range rep.Requests {
		name := req.Name
		if name == "" {
			name = fmt.Sprintf("unknown %#x %#x", req.ID[2], req.ID[3])
		}
		log.Debug().
			Str("request", name).
			Uint64("revision", req.Revision).
			Str("section", req.Section).
			Str("addr", fmt.Sprintf("%#x", req.Addr)).
			Msg("found")
	}
	for _, rev := range rep.Revisions {
		log.Debug().
			Uint64("base_revision", rev.Revision).
			Str("addr", fmt.Sprintf("%#x", rev.Addr)).
			Msg("found revision marker")
	}
	log.Info().
		Int("requests", len(rep.Requests)).
		Bool("section", rep.HasSection).
		Msg("scanned")

	if m == nil {
		return true
	}
	errs := m.Check(rep)
	for _, err := range errs {
		log.Error().Err(err).Msg("manifest violation")
	}
	return len(errs) == 0
}
