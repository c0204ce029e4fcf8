// Package main はVPXテストサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"vpxtestserver/internal/config"
	"vpxtestserver/internal/server"
)

func main() {
	// コマンドラインオプション
	var (
		host       = flag.String("host", "", "サーバーのホスト (デフォルト: 0.0.0.0)")
		root       = flag.String("root", "", "配信するディレクトリ (デフォルト: カレントディレクトリ)")
		configPath = flag.String("config", "", "YAML設定ファイルのパス")
		sequential = flag.Bool("sequential", false, "リクエストを1件ずつ処理する")
		help       = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("VPXTestServer")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション] [ポート]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// ポート番号はバインド前に検証する
	args := flag.Args()
	port, err := config.ParsePortArg(args)
	if err != nil {
		log.Fatalf("引数の解析に失敗しました: %v", err)
	}

	// 配信ルートは設定の検証前に反映する
	if *root != "" {
		if err := os.Setenv("MEDIA_ROOT", *root); err != nil {
			log.Fatalf("配信ルートの設定に失敗しました: %v", err)
		}
	}

	// 設定を読み込む
	var cfg *config.Config
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if *host != "" {
		cfg.Server.Host = *host
	}
	if len(args) > 0 {
		cfg.Server.Port = port
	}
	if *sequential {
		cfg.Server.Sequential = true
	}

	srv := server.New(cfg)

	// サーバーを起動
	log.Printf("VPXTestServer を起動します: %s", cfg.ServerAddress())
	if err := srv.Start(context.Background()); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
