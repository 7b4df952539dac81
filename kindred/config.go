package kindred

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kindredchat/kindred/kindred/database"
	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log    LogConfig         `toml:"log"`
	Server ServerConfig      `toml:"server"`
	DB     database.DBConfig `toml:"db"`
	OpenAI OpenAIConfig      `toml:"openai"`
	Legacy LegacyConfig      `toml:"legacy"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type OpenAIConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
}

// LegacyConfig points at the previous MongoDB deployment, used only by the
// migration tool.
type LegacyConfig struct {
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}
