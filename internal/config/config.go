// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Shading  ShadingConfig  `yaml:"shading"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds dataset and meshing settings.
type TerrainConfig struct {
	// DataPath is the elevation sample file in the loader's text format.
	DataPath string `yaml:"data_path"`

	// MaxEdgeLength is the triangle edge filter threshold in normalized
	// [-1, 1] space.
	MaxEdgeLength float32 `yaml:"max_edge_length"`

	// GenerateFallback enables synthesizing a Perlin-noise dataset (and
	// writing it to DataPath) when the file is missing.
	GenerateFallback bool  `yaml:"generate_fallback"`
	SampleCount      int   `yaml:"sample_count"`
	Seed             int64 `yaml:"seed"`
}

// ShadingConfig holds the pluggable fragment shading settings.
type ShadingConfig struct {
	// Mode selects the fragment shader: "normals" maps the vertex normal
	// to RGB, "phong" applies ambient/diffuse/specular lighting.
	Mode string `yaml:"mode"`

	Ambient   float32 `yaml:"ambient"`
	Diffuse   float32 `yaml:"diffuse"`
	Specular  float32 `yaml:"specular"`
	Shininess float32 `yaml:"shininess"`

	// Sun angles in degrees: longitude around Y, latitude above horizon.
	LightLongitude float32    `yaml:"light_longitude"`
	LightLatitude  float32    `yaml:"light_latitude"`
	LightColor     [3]float32 `yaml:"light_color"`
}

// CameraConfig holds free-fly camera settings.
type CameraConfig struct {
	MoveSpeed        float32 `yaml:"move_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	RollSensitivity  float32 `yaml:"roll_sensitivity"`
	FOV              float32 `yaml:"fov"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ShadingModes supported by the renderer.
const (
	ShadingNormals = "normals"
	ShadingPhong   = "phong"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			DataPath:         "elevation.txt",
			MaxEdgeLength:    0.15,
			GenerateFallback: true,
			SampleCount:      5000,
			Seed:             1,
		},
		Shading: ShadingConfig{
			Mode:           ShadingNormals,
			Ambient:        0.2,
			Diffuse:        0.8,
			Specular:       0.4,
			Shininess:      32,
			LightLongitude: 45,
			LightLatitude:  60,
			LightColor:     [3]float32{1, 1, 1},
		},
		Camera: CameraConfig{
			MoveSpeed:        2.5,
			MouseSensitivity: 0.1,
			RollSensitivity:  0.25,
			FOV:              45,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
