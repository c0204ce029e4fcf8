package main

import (
	"context"
	"log"
	"os"

	"vpxtestserver/internal/config"
	"vpxtestserver/internal/server"
)

func main() {
	// 最初の位置引数をポート番号として解釈する（バインド前に検証）
	port, err := config.ParsePortArg(os.Args[1:])
	if err != nil {
		log.Fatalf("引数の解析に失敗しました: %v", err)
	}

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}
	if len(os.Args) > 1 {
		cfg.Server.Port = port
	}

	// サーバーを作成
	srv := server.New(cfg)

	// サーバーを起動
	if err := srv.Start(context.Background()); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
