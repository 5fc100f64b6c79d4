package main

import (
	"flag"
	"log"
	"os"

	"github.com/anrid/us-population/pkg/config"
	"github.com/anrid/us-population/pkg/stats"
)

func main() {
	log.SetPrefix("create: ")
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("create: %v", err)
	}

	var (
		flagSource = flag.String("src", cfg.Source, "population table to convert, a path or http(s) URL (.csv, .xlsx, .xls)")
		flagOut    = flag.String("o", cfg.Dataset, "write the dataset to `file`")
		flagForce  = flag.Bool("f", false, "rebuild the dataset even if it exists")
	)
	flag.Parse()

	stats.Log = log.Default()

	db, found, err := stats.LoadIfExists(*flagOut)
	if err != nil {
		config.Exitf("create: %v", err)
	}
	if !found || *flagForce {
		store, err := stats.Load(*flagSource)
		if err != nil {
			config.Exitf("create: %v", err)
		}
		db = stats.NewDataset(*flagSource, store.Records())
		if err := db.Save(*flagOut); err != nil {
			config.Exitf("create: save %s: %v", *flagOut, err)
		}
		log.Printf("wrote %s", *flagOut)
	}

	db.Info(os.Stdout)
}
