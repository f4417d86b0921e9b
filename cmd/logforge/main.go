// logforge is a CLI utility for generating textured log meshes from
// parameter records.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/logforge/internal/batch"
	"github.com/Faultbox/logforge/internal/config"
	"github.com/Faultbox/logforge/internal/logger"
	"github.com/Faultbox/logforge/internal/trunk"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "validate", "check":
		cmdValidate(args)
	case "defaults":
		cmdDefaults()
	case "config-init":
		cmdConfigInit(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`logforge - procedural log mesh generator

Usage:
  logforge <command> [options]

Commands:
  generate [options]   Generate every parameter record in the params directory
  validate [files...]  Check parameter records without generating anything
  defaults             Print the default parameter record as JSON
  config-init [path]   Write a starter config file
  help                 Show this message

Generate options (also read from logforge.yaml):
  -config path    Config file
  -params dir     Parameter records (*.json)
  -textures dir   Texture library root
  -objs dir       Scene output directory ({name}.obj + {name}.mtl)
  -stls dir       Interchange output directory ({name}.stl)
  -workers n      Parallel workers (0 = one per CPU)
  -seed n         Bark noise seed
  -debug          Debug logging

Examples:
  logforge generate -params ./params -textures ./textures
  logforge validate params/oak_01.json
  logforge defaults > params/new_log.json`)
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	config.RegisterFlags(fs)
	manifest := fs.Bool("manifest", true, "Write manifest.json next to the scene files")
	fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	files, err := batch.ListParamFiles(cfg.Paths.ParamsDir)
	if err != nil {
		logger.Error("no work to do", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("starting batch",
		zap.Int("records", len(files)),
		zap.String("params", cfg.Paths.ParamsDir),
		zap.String("textures", cfg.Paths.TextureRoot))

	start := time.Now()
	results, err := batch.Run(batch.Config{
		TextureRoot:    cfg.Paths.TextureRoot,
		SceneDir:       cfg.Paths.SceneDir,
		InterchangeDir: cfg.Paths.InterchangeDir,
		Seed:           cfg.Generation.Seed,
		Workers:        cfg.Generation.Workers,
		Log:            logger.Named("batch"),
	}, files)
	if err != nil {
		logger.Error("batch could not start", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	summary := batch.Summarize(results, time.Since(start))
	if *manifest {
		path := filepath.Join(cfg.Paths.SceneDir, "manifest.json")
		if err := batch.WriteManifest(path, results); err != nil {
			logger.Warn("could not write manifest", zap.Error(err))
		}
	}

	logger.Info("batch finished",
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Duration("elapsed", summary.Elapsed))

	if summary.Failed > 0 {
		logger.Sync()
		os.Exit(1)
	}
}

func cmdValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	config.RegisterFlags(fs)
	fs.Parse(args)

	files := fs.Args()
	if len(files) == 0 {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		files, err = batch.ListParamFiles(cfg.Paths.ParamsDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	bad := 0
	for _, f := range files {
		if _, err := trunk.ParseFile(f); err != nil {
			fmt.Printf("FAIL %s: %v\n", filepath.Base(f), err)
			bad++
			continue
		}
		fmt.Printf("OK   %s\n", filepath.Base(f))
	}

	if bad > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d records invalid\n", bad, len(files))
		os.Exit(1)
	}
}

func cmdDefaults() {
	data, err := json.MarshalIndent(trunk.Defaults(), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func cmdConfigInit(args []string) {
	fs := flag.NewFlagSet("config-init", flag.ExitOnError)
	fs.Parse(args)

	cfg := config.Default()
	if fs.NArg() > 0 {
		path := fs.Arg(0)
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		return
	}

	if err := cfg.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", filepath.Join(config.ConfigDir(), "logforge.yaml"))
}
