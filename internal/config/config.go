// Package config handles generator configuration loading and management.
package config

// Config holds all generator settings.
type Config struct {
	Paths      PathsConfig      `yaml:"paths"`
	Generation GenerationConfig `yaml:"generation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// PathsConfig holds input and output locations.
type PathsConfig struct {
	ParamsDir      string `yaml:"params_dir"`      // Directory of *.json parameter records
	TextureRoot    string `yaml:"texture_root"`    // Root of the numbered texture sets
	SceneDir       string `yaml:"scene_dir"`       // {name}.obj + {name}.mtl output
	InterchangeDir string `yaml:"interchange_dir"` // {name}.stl output
}

// GenerationConfig holds batch and determinism settings.
type GenerationConfig struct {
	Workers int   `yaml:"workers"` // 0 means one per CPU
	Seed    int64 `yaml:"seed"`    // Bark noise seed
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			ParamsDir:      "./params",
			TextureRoot:    "./textures",
			SceneDir:       "./objs",
			InterchangeDir: "./stls",
		},
		Generation: GenerationConfig{
			Workers: 0,
			Seed:    0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
