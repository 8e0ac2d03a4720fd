// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Assets   AssetsConfig   `yaml:"assets"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	Fullscreen  bool `yaml:"fullscreen"`
	VSync       bool `yaml:"vsync"`
	MSAASamples int  `yaml:"msaa_samples"`
}

// AssetsConfig holds asset file locations.
type AssetsConfig struct {
	// Dir is the directory the texture manifest resolves against.
	Dir string `yaml:"dir"`
}

// CameraConfig holds the initial orbit camera placement.
type CameraConfig struct {
	Distance float32 `yaml:"distance"`
	FOV      float32 `yaml:"fov"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:       1280,
			Height:      720,
			Fullscreen:  false,
			VSync:       true,
			MSAASamples: 4,
		},
		Assets: AssetsConfig{
			Dir: "assets/textures",
		},
		Camera: CameraConfig{
			Distance: 32,
			FOV:      60,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// normalize clamps values a hand-edited config file could set out of range.
func (c *Config) normalize() {
	if c.Graphics.Width < 320 {
		c.Graphics.Width = 320
	}
	if c.Graphics.Height < 240 {
		c.Graphics.Height = 240
	}
	if c.Graphics.MSAASamples < 0 {
		c.Graphics.MSAASamples = 0
	}
	if c.Graphics.MSAASamples > 16 {
		c.Graphics.MSAASamples = 16
	}
	if c.Camera.Distance <= 0 {
		c.Camera.Distance = 32
	}
	if c.Camera.FOV < 20 || c.Camera.FOV > 120 {
		c.Camera.FOV = 60
	}
}
