package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"grid-studio/internal/common/config"
	"grid-studio/internal/common/logging"
	"grid-studio/internal/grid/catalog"
	"grid-studio/internal/grid/export"
	"grid-studio/internal/grid/models"
	"grid-studio/internal/grid/svgscan"

	"github.com/rs/zerolog"
)

// ============================================================
// gridctl
// ============================================================

const usage = `usage:
  gridctl render -config cfg.json [-format png|svg] [-out file] [-transparent]
  gridctl patterns
  gridctl inspect file.svg
`

func main() {
	cfg := config.Load()
	log := logging.Component(logging.New("development", cfg.LogLevel), "gridctl")

	if err := run(os.Args[1:], os.Stdout, cfg, log); err != nil {
		log.Error().Err(err).Msg("gridctl failed")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, cfg *config.Config, log zerolog.Logger) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return fmt.Errorf("command required")
	}

	switch args[0] {
	case "render":
		return renderCmd(args[1:], stdout, cfg, log)
	case "patterns":
		return patternsCmd(stdout)
	case "inspect":
		return inspectCmd(args[1:], stdout)
	}
	fmt.Fprint(stdout, usage)
	return fmt.Errorf("unknown command %q", args[0])
}

func renderCmd(args []string, stdout io.Writer, cfg *config.Config, log zerolog.Logger) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stdout)
	configPath := fs.String("config", "", "GridConfig JSON file (defaults when empty)")
	formatName := fs.String("format", "png", "png or svg")
	out := fs.String("out", "", "output file (baseline-grid-WxH.ext when empty)")
	transparent := fs.Bool("transparent", false, "omit the background")
	if err := fs.Parse(args); err != nil {
		return err
	}

	format, err := export.ParseFormat(*formatName)
	if err != nil {
		return err
	}

	grid := models.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(data, &grid); err != nil {
			return fmt.Errorf("decode config: %w", err)
		}
	}

	exporter := export.NewExporter(cfg.MaxCanvasSide, cfg.BatchWorkers, log)
	data, err := exporter.Render(grid, format, *transparent)
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = export.Filename(grid.State, format)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("file", path).Int("bytes", len(data)).Msg("rendered")
	return nil
}

func patternsCmd(stdout io.Writer) error {
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, c := range catalog.Categories() {
		for _, p := range c.Patterns {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, p.ID, p.Name)
		}
	}
	return w.Flush()
}

func inspectCmd(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("inspect: one svg file required")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := svgscan.Parse(f)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc.Summary())
}
