// Package config handles engine configuration loading and management.
package config

// Config holds all engine settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Player   PlayerConfig   `yaml:"player"`
	Camera   CameraConfig   `yaml:"camera"`
	World    WorldConfig    `yaml:"world"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FPSLimit   int        `yaml:"fps_limit"`
	FOV        float32    `yaml:"fov"` // vertical field of view, degrees
	NearPlane  float32    `yaml:"near_plane"`
	FarPlane   float32    `yaml:"far_plane"`
	SkyColour  [3]float32 `yaml:"sky_colour"`
}

// TerrainConfig describes the terrain tiles and their height map.
type TerrainConfig struct {
	TileSize   float32         `yaml:"tile_size"`
	MaxHeight  float32         `yaml:"max_height"`
	HeightMap  string          `yaml:"heightmap"`  // empty: generate procedurally
	Resolution int             `yaml:"resolution"` // 0: use the image size
	Grid       [][2]int        `yaml:"grid"`
	Seed       int64           `yaml:"seed"`
	Textures   TerrainTextures `yaml:"textures"`
}

// TerrainTextures lists the blend-mapped terrain texture files.
type TerrainTextures struct {
	Background string `yaml:"background"`
	R          string `yaml:"r"`
	G          string `yaml:"g"`
	B          string `yaml:"b"`
	BlendMap   string `yaml:"blend_map"`
}

// PlayerConfig holds locomotion tuning for the controlled player.
type PlayerConfig struct {
	RunSpeed         float32    `yaml:"run_speed"`
	TurnSpeed        float32    `yaml:"turn_speed"` // degrees per second
	Gravity          float32    `yaml:"gravity"`
	JumpPower        float32    `yaml:"jump_power"`
	SprintMultiplier float32    `yaml:"sprint_multiplier"`
	Start            [3]float32 `yaml:"start"`
	Scale            float32    `yaml:"scale"`
}

// CameraConfig holds orbit camera settings. Angles are in degrees.
type CameraConfig struct {
	Distance         float32 `yaml:"distance"`
	Pitch            float32 `yaml:"pitch"`
	YawOffset        float32 `yaml:"yaw_offset"`
	ZoomSensitivity  float32 `yaml:"zoom_sensitivity"`
	PitchSensitivity float32 `yaml:"pitch_sensitivity"`
	YawSensitivity   float32 `yaml:"yaw_sensitivity"`
	MinDistance      float32 `yaml:"min_distance"`
}

// WorldConfig controls the scattered world population.
type WorldConfig struct {
	Seed             int64   `yaml:"seed"`
	Trees            int     `yaml:"trees"`
	Grass            int     `yaml:"grass"`
	Rocks            int     `yaml:"rocks"`
	DensityThreshold float64 `yaml:"density_threshold"`
}

// DataConfig holds asset locations.
type DataConfig struct {
	AssetDirs []string `yaml:"asset_dirs"`
	ShaderDir string   `yaml:"shader_dir"` // empty: embedded GLSL
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the demo's default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:     1280,
			Height:    760,
			FPSLimit:  120,
			FOV:       70,
			NearPlane: 0.1,
			FarPlane:  1000,
			SkyColour: [3]float32{0.5, 0.5, 0.5},
		},
		Terrain: TerrainConfig{
			TileSize:  800,
			MaxHeight: 40,
			Grid:      [][2]int{{0, 0}},
			Seed:      123,
			Textures: TerrainTextures{
				Background: "grassy.png",
				R:          "dirt.png",
				G:          "pinkFlowers.png",
				B:          "path.png",
				BlendMap:   "blendMap.png",
			},
		},
		Player: PlayerConfig{
			RunSpeed:         20,
			TurnSpeed:        160,
			Gravity:          -50,
			JumpPower:        30,
			SprintMultiplier: 10,
			Start:            [3]float32{400, 0, 400},
			Scale:            1,
		},
		Camera: CameraConfig{
			Distance:         50,
			Pitch:            20,
			ZoomSensitivity:  0.1,
			PitchSensitivity: 0.1,
			YawSensitivity:   0.3,
			MinDistance:      -1,
		},
		World: WorldConfig{
			Seed:  42,
			Trees: 200,
			Grass: 400,
			Rocks: 80,
		},
		Data: DataConfig{
			AssetDirs: []string{"res"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
