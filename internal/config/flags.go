package config

import "flag"

var (
	flagConfig      *string
	flagDebug       *bool
	flagParams      *string
	flagTextures    *string
	flagScene       *string
	flagInterchange *string
	flagWorkers     *int
	flagSeed        *int64
)

// RegisterFlags attaches the config override flags to a command's flag
// set. Call before the set is parsed.
func RegisterFlags(fs *flag.FlagSet) {
	flagConfig = fs.String("config", "", "Path to config file")
	flagDebug = fs.Bool("debug", false, "Enable debug logging")
	flagParams = fs.String("params", "", "Directory of parameter files")
	flagTextures = fs.String("textures", "", "Texture library root")
	flagScene = fs.String("objs", "", "Scene output directory")
	flagInterchange = fs.String("stls", "", "Interchange output directory")
	flagWorkers = fs.Int("workers", 0, "Worker count (0 = one per CPU)")
	flagSeed = fs.Int64("seed", 0, "Bark noise seed")
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	if flagConfig == nil {
		return ""
	}
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if flagDebug != nil && *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if flagParams != nil && *flagParams != "" {
		cfg.Paths.ParamsDir = *flagParams
	}
	if flagTextures != nil && *flagTextures != "" {
		cfg.Paths.TextureRoot = *flagTextures
	}
	if flagScene != nil && *flagScene != "" {
		cfg.Paths.SceneDir = *flagScene
	}
	if flagInterchange != nil && *flagInterchange != "" {
		cfg.Paths.InterchangeDir = *flagInterchange
	}
	if flagWorkers != nil && *flagWorkers > 0 {
		cfg.Generation.Workers = *flagWorkers
	}
	if flagSeed != nil && *flagSeed != 0 {
		cfg.Generation.Seed = *flagSeed
	}
}
