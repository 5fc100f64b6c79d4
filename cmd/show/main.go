package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/anrid/us-population/pkg/config"
	"github.com/anrid/us-population/pkg/dashboard"
	"github.com/anrid/us-population/pkg/derive"
	"github.com/anrid/us-population/pkg/render"
	"github.com/anrid/us-population/pkg/stats"
)

func main() {
	log.SetPrefix("show: ")
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("show: %v", err)
	}

	var (
		flagData  = flag.String("data", cfg.Dataset, "dataset or table to load, a path or http(s) URL")
		flagKey   = flag.String("key", "", "select a component or year after the initial publish")
		flagTheme = flag.String("theme", "", "select a color theme after the initial publish")
		flagOut   = flag.String("out", cfg.OutDir, "write every published view model to `dir`")
		flagDump  = flag.Bool("dump", false, "dump all view models")
	)
	flag.Parse()

	sel, err := cfg.Selection()
	if err != nil {
		config.Exitf("show: %v", err)
	}

	stats.Log = log.Default()
	store, err := stats.Load(*flagData)
	if err != nil {
		config.Exitf("show: %v (run the create command in `cmd/create` first)", err)
	}

	memory := dashboard.NewMemorySink()
	sinks := render.Multi{memory}
	if *flagOut != "" {
		files, err := render.NewFileSink(*flagOut)
		if err != nil {
			config.Exitf("show: %v", err)
		}
		sinks = append(sinks, files)
	}

	pub, err := dashboard.New(store, sinks, sel, log.Default())
	if err != nil {
		config.Exitf("show: %v", err)
	}
	if err := pub.PublishAll(); err != nil {
		config.Exitf("show: %v", err)
	}

	if *flagKey != "" {
		slots, err := pub.OnSelectionChanged(dashboard.FieldKey, *flagKey)
		if err != nil {
			config.Exitf("show: %v", err)
		}
		log.Printf("%s=%s: published %v", dashboard.FieldKey, *flagKey, slots)
	}
	if *flagTheme != "" {
		slots, err := pub.OnSelectionChanged(dashboard.FieldTheme, *flagTheme)
		if err != nil {
			config.Exitf("show: %v", err)
		}
		log.Printf("%s=%s: published %v", dashboard.FieldTheme, *flagTheme, slots)
	}

	if *flagDump {
		spew.Dump(memory.Snapshot())
		return
	}

	printDashboard(memory)
}

func printDashboard(m *dashboard.MemorySink) {
	p := message.NewPrinter(language.English)

	get := func(slot dashboard.Slot) interface{} {
		v, _ := m.Get(slot)
		return v
	}

	p.Printf("\n%s\n\n", get(dashboard.SlotTitle))

	line := get(dashboard.SlotLine).(derive.LineView)
	p.Println("Population over time:")
	for i, x := range line.Xs {
		p.Printf("  %d  %12d  (%s)\n", x, line.Ys[i], line.Labels[i])
	}

	p.Println("\nGains:")
	p.Println(get(dashboard.SlotGains))
	p.Println("\nLosses:")
	p.Println(get(dashboard.SlotLosses))

	above := get(dashboard.SlotAbove).(derive.DonutView)
	below := get(dashboard.SlotBelow).(derive.DonutView)
	p.Printf("\nStates growth: %s %s, %s %s\n", above.Label, above.Text, below.Label, below.Text)

	c := get(dashboard.SlotChoropleth).(derive.ChoroplethView)
	p.Printf("\nMap: %d states, %d - %d (%s)\n", len(c.Locations), c.Domain[0], c.Domain[1], c.ColorScale)

	h := get(dashboard.SlotHeatmap).(derive.HeatmapView)
	p.Printf("Heatmap: %d years x %d states, %dx%d px (%s)\n", len(h.Years), len(h.States), h.Width, h.Height, h.ColorScale)

	printRanking(p, "Top 5 States", get(dashboard.SlotTop5).([]derive.RankedEntry))
	printRanking(p, "Bottom 5 States", get(dashboard.SlotBottom5).([]derive.RankedEntry))
}

func printRanking(p *message.Printer, title string, entries []derive.RankedEntry) {
	p.Printf("\n%s:\n", title)
	if len(entries) == 0 {
		fmt.Println("  -")
		return
	}
	for _, e := range entries {
		p.Printf("%02d. %-22s  %4d%%\n", e.Rank, e.State, e.Percent)
	}
}
