package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/theoremus-urban-solutions/transit-equity/config"
	"github.com/theoremus-urban-solutions/transit-equity/formatter"
	"github.com/theoremus-urban-solutions/transit-equity/internal/logger"
	"github.com/theoremus-urban-solutions/transit-equity/scenario"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (default ./config.yml)")
	scenarioName := flag.String("scenario", "", "scenario name from config.scenarios[] (default: first)")
	compare := flag.String("compare", "", "two scenario names, comma-separated, to diff (B - A)")
	format := flag.String("format", "json", "json|csv")
	scores := flag.Bool("scores", false, "emit per-zone scores instead of the group summary (csv only)")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	runner := scenario.NewRunner(cfg, log)
	sb := formatter.NewSummaryBuilder()

	var buf []byte
	if *compare != "" {
		names := strings.Split(*compare, ",")
		if len(names) != 2 {
			log.Fatalw("compare needs exactly two scenario names", "got", *compare)
		}
		c, err := runner.CompareScenarios(strings.TrimSpace(names[0]), strings.TrimSpace(names[1]))
		if err != nil {
			log.Fatalw("comparison failed", "error", err)
		}
		if *format == "csv" {
			buf = sb.BuildComparisonCSV(c)
		} else {
			buf = sb.BuildComparisonJSON(c)
		}
	} else {
		s, err := runner.Run(*scenarioName)
		if err != nil {
			log.Fatalw("scenario failed", "error", err)
		}
		switch {
		case *scores:
			buf = sb.BuildScoresCSV(s)
		case *format == "csv":
			buf = sb.BuildCSV(s)
		default:
			buf = sb.BuildJSON(s)
		}
	}

	if *out != "" {
		if err := os.WriteFile(*out, buf, 0o644); err != nil {
			log.Fatalw("write output", "path", *out, "error", err)
		}
		return
	}
	fmt.Println(string(buf))
}
