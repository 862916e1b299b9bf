// Command matlint loads material content, runs the reference check and prints every diagnostic.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/osse101/Materials_Go/internal/bootstrap"
	"github.com/osse101/Materials_Go/internal/config"
	"github.com/osse101/Materials_Go/internal/diagnostics"
	"github.com/osse101/Materials_Go/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("matlint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("dir", config.ConfigPathMaterialsDir, "directory of material .json/.yaml files")
	items := fs.String("items", config.ConfigPathItems, "item catalog file")
	locale := fs.String("locale", "", "optional locale file")
	strict := fs.Bool("strict", false, "exit non-zero when the check reports any problem")
	verbose := fs.Bool("v", false, "log load progress")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := "WARN"
	if *verbose {
		level = "INFO"
	}
	logger.InitLoggerWithWriter(logger.NewConfig(level, "text", "matlint", "", "", false), stderr)

	collector := diagnostics.NewCollector()
	result, err := bootstrap.BuildRegistry(context.Background(), bootstrap.ContentPaths{
		MaterialsDir: *dir,
		ItemsPath:    *items,
		LocalePath:   *locale,
	}, collector)
	if err != nil {
		slog.Error("Load failed", "error", err)
		fmt.Fprintf(stderr, "matlint: %v\n", err)
		return 1
	}

	for _, msg := range collector.Messages() {
		fmt.Fprintln(stdout, msg)
	}
	fmt.Fprintf(stdout, "%d materials, %d problems\n", result.Registry.Len(), collector.Len())

	if *strict && collector.Len() > 0 {
		return 1
	}
	return 0
}
