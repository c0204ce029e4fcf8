package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestConfigLoad は設定の読み込みをテストする
func TestConfigLoad(t *testing.T) {
	t.Setenv("SERVER_HOST", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("MEDIA_ROOT", "")
	t.Setenv("SERVER_SEQUENTIAL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("デフォルトホストが一致しません: got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("デフォルトポートが一致しません: got %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.ReadTimeout <= 0 {
		t.Error("読み込みタイムアウトが設定されていません")
	}
	// WriteTimeout は 0（無効）でも正常
	if cfg.Server.WriteTimeout < 0 {
		t.Error("書き込みタイムアウトが負の値です")
	}
	if cfg.Server.Sequential {
		t.Error("デフォルトでは並行処理が期待されます")
	}
	if cfg.Media.Root != "." {
		t.Errorf("デフォルトの配信ルートが一致しません: got %s", cfg.Media.Root)
	}
}

// TestConfigValidation は設定の検証をテストする
func TestConfigValidation(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(file, []byte("notes"), 0o644); err != nil {
		t.Fatalf("ファイルの作成に失敗しました: %v", err)
	}

	testCases := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{
			name: "正常な設定",
			config: &Config{
				Server: ServerConfig{Host: "localhost", Port: 8000},
				Media:  MediaConfig{Root: dir},
			},
			expectErr: false,
		},
		{
			name: "ランダムポート",
			config: &Config{
				Server: ServerConfig{Host: "127.0.0.1", Port: 0},
				Media:  MediaConfig{Root: dir},
			},
			expectErr: false,
		},
		{
			name: "無効なポート番号",
			config: &Config{
				Server: ServerConfig{Host: "localhost", Port: 99999},
				Media:  MediaConfig{Root: dir},
			},
			expectErr: true,
		},
		{
			name: "配信ルートなし",
			config: &Config{
				Server: ServerConfig{Host: "localhost", Port: 8000},
				Media:  MediaConfig{Root: ""},
			},
			expectErr: true,
		},
		{
			name: "存在しない配信ルート",
			config: &Config{
				Server: ServerConfig{Host: "localhost", Port: 8000},
				Media:  MediaConfig{Root: filepath.Join(dir, "missing")},
			},
			expectErr: true,
		},
		{
			name: "配信ルートがファイル",
			config: &Config{
				Server: ServerConfig{Host: "localhost", Port: 8000},
				Media:  MediaConfig{Root: file},
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.expectErr && err == nil {
				t.Error("エラーが期待されましたが、エラーが発生しませんでした")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("予期しないエラーが発生しました: %v", err)
			}
		})
	}
}

// TestServerAddress はサーバーアドレスの生成をテストする
func TestServerAddress(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{
			Host: "192.168.1.100",
			Port: 9090,
		},
	}

	expected := "192.168.1.100:9090"
	actual := cfg.ServerAddress()

	if actual != expected {
		t.Errorf("サーバーアドレスが一致しません: got %s, want %s", actual, expected)
	}
}

// TestEnvironmentVariables は環境変数の処理をテストする
func TestEnvironmentVariables(t *testing.T) {
	root := t.TempDir()
	t.Setenv("SERVER_HOST", "test.example.com")
	t.Setenv("PORT", "7000")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("MEDIA_ROOT", root)
	t.Setenv("SERVER_SEQUENTIAL", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if cfg.Server.Host != "test.example.com" {
		t.Errorf("環境変数のホストが反映されていません: got %s, want test.example.com", cfg.Server.Host)
	}
	// SERVER_PORT は PORT より優先される
	if cfg.Server.Port != 9999 {
		t.Errorf("環境変数のポートが反映されていません: got %d, want 9999", cfg.Server.Port)
	}
	if cfg.Media.Root != root {
		t.Errorf("環境変数の配信ルートが反映されていません: got %s, want %s", cfg.Media.Root, root)
	}
	if !cfg.Server.Sequential {
		t.Error("環境変数の逐次処理設定が反映されていません")
	}
}

// TestLoadFile はYAML設定ファイルの読み込みをテストする
func TestLoadFile(t *testing.T) {
	t.Setenv("SERVER_HOST", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("MEDIA_ROOT", "")
	t.Setenv("SERVER_SEQUENTIAL", "")

	root := t.TempDir()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n" +
		"  host: 127.0.0.1\n" +
		"  port: 8123\n" +
		"  read_timeout: 3s\n" +
		"  sequential: true\n" +
		"media:\n" +
		"  root: " + root + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("設定ファイルの作成に失敗しました: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("設定ファイルの読み込みに失敗しました: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 8123 {
		t.Errorf("サーバー設定が反映されていません: got %s", cfg.ServerAddress())
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("読み込みタイムアウトが反映されていません: got %v", cfg.Server.ReadTimeout)
	}
	if !cfg.Server.Sequential {
		t.Error("逐次処理設定が反映されていません")
	}
	if cfg.Media.Root != root {
		t.Errorf("配信ルートが反映されていません: got %s", cfg.Media.Root)
	}
}

// TestLoadFileErrors は設定ファイルの異常系をテストする
func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("server: [\n"), 0o644); err != nil {
		t.Fatalf("設定ファイルの作成に失敗しました: %v", err)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("存在しないファイルでエラーが期待されました")
	}
	if _, err := LoadFile(broken); err == nil {
		t.Error("不正なYAMLでエラーが期待されました")
	}
}

// TestParsePortArg はポート引数の解析をテストする
func TestParsePortArg(t *testing.T) {
	testCases := []struct {
		name      string
		args      []string
		want      int
		expectErr bool
	}{
		{"引数なし", nil, DefaultPort, false},
		{"数値", []string{"9000"}, 9000, false},
		{"余分な引数は無視", []string{"9001", "extra"}, 9001, false},
		{"数値以外", []string{"abc"}, 0, true},
		{"範囲外", []string{"70000"}, 0, true},
		{"ゼロ", []string{"0"}, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePortArg(tc.args)
			if tc.expectErr {
				if err == nil {
					t.Error("エラーが期待されましたが、エラーが発生しませんでした")
				}
				return
			}
			if err != nil {
				t.Fatalf("予期しないエラーが発生しました: %v", err)
			}
			if got != tc.want {
				t.Errorf("ポート番号が一致しません: got %d, want %d", got, tc.want)
			}
		})
	}
}
