package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do CuboVision.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Renderização
	RenderWidth  int     `json:"render_width"`  // resolução interna do framebuffer
	RenderHeight int     `json:"render_height"` // (apresentada esticada na janela)
	FOV          float32 `json:"fov"`
	Shadows      bool    `json:"shadows"`

	// Cena
	SceneDir    string `json:"scene_dir"`
	TexturesDir string `json:"textures_dir"`
	SaveFile    string `json:"save_file"` // nome do arquivo em saves/ (sem extensão)

	// Câmera
	CameraSpeed       float32 `json:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity"`
	ZoomSpeed         float32 `json:"zoom_speed"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "CuboVision",
		Fullscreen:   false,
		TargetFPS:    60,

		RenderWidth:  800,
		RenderHeight: 600,
		FOV:          60.0,
		Shadows:      true,

		SceneDir:    "assets/cenas/demo",
		TexturesDir: "assets/textures/blocos",
		SaveFile:    "diorama",

		CameraSpeed:       10.0,
		CameraSensitivity: 0.3,
		ZoomSpeed:         2.5,

		ShowDebugInfo: true,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
