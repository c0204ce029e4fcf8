package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPort はポート指定がない場合に使うポート番号
const DefaultPort = 8000

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig `yaml:"server"`
	Media  MediaConfig  `yaml:"media"`
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string `yaml:"host"` // リッスンするホスト
	Port int    `yaml:"port"` // リッスンするポート番号（0はテスト用のランダムポート）

	// タイムアウト設定
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // 読み込みタイムアウト
	WriteTimeout time.Duration `yaml:"write_timeout"` // 書き込みタイムアウト

	// Sequential が有効な場合、リクエストを1件ずつ処理する
	Sequential bool `yaml:"sequential"`
}

// MediaConfig は配信するメディアディレクトリの設定
type MediaConfig struct {
	Root string `yaml:"root"` // 配信ルートディレクトリ
}

// Default はデフォルト設定を返す
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         DefaultPort,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 0, // 大きなメディアファイル配信用にタイムアウト無効化
		},
		Media: MediaConfig{
			Root: ".",
		},
	}
}

// Load は設定を読み込む
// デフォルト値に環境変数を上書きして検証する
func Load() (*Config, error) {
	cfg := Default()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// LoadFile はYAMLファイルの設定をデフォルト値に重ね、さらに環境変数で上書きする
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルの解析に失敗: %w", err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	// サーバー設定の検証
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}

	// メディア設定の検証
	if c.Media.Root == "" {
		return fmt.Errorf("配信ルートが設定されていません")
	}
	info, err := os.Stat(c.Media.Root)
	if err != nil {
		return fmt.Errorf("配信ルートにアクセスできません: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("配信ルートがディレクトリではありません: %s", c.Media.Root)
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ParsePortArg は最初の位置引数をポート番号として解釈する
// 引数がない場合はDefaultPortを返す
func ParsePortArg(args []string) (int, error) {
	if len(args) == 0 {
		return DefaultPort, nil
	}

	port, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("ポート番号の解析に失敗: %w", err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("無効なポート番号: %d", port)
	}
	return port, nil
}

// applyEnv は環境変数で設定を上書きする
func applyEnv(cfg *Config) {
	cfg.Server.Host = getEnvOrDefault("SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvAsIntOrDefault("PORT", cfg.Server.Port)
	cfg.Server.Port = getEnvAsIntOrDefault("SERVER_PORT", cfg.Server.Port)
	cfg.Server.Sequential = getEnvAsBoolOrDefault("SERVER_SEQUENTIAL", cfg.Server.Sequential)
	cfg.Media.Root = getEnvOrDefault("MEDIA_ROOT", cfg.Media.Root)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
