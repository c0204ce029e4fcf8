package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"

	"vpxtestserver/internal/config"
)

// Server はHTTPサーバーを管理する構造体
type Server struct {
	config     *config.Config
	router     *Router
	httpServer *http.Server

	// out は起動・停止メッセージの出力先
	out io.Writer

	mu       sync.Mutex
	started  bool
	listener net.Listener
	ready    chan struct{}
}

// ErrAlreadyStarted はStartが2回以上呼ばれた場合に返される
var ErrAlreadyStarted = errors.New("サーバーは既に起動されています")

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config) *Server {
	return newServer(cfg, DirStatic(cfg.Media.Root))
}

// newServer は静的ファイル配信を指定してServerを作成する
func newServer(cfg *config.Config, static StaticServer) *Server {
	// GIN_MODE の指定がなければデバッグ出力を抑止する
	if os.Getenv(gin.EnvGinMode) == "" && gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware := []gin.HandlerFunc{requestLogger()}
	if cfg.Server.Sequential {
		middleware = append(middleware, sequential())
	}

	router := NewRouter(cfg.Media.Root, DefaultRoutes(), static, middleware...)

	return &Server{
		config: cfg,
		router: router,
		out:    color.Output,
		ready:  make(chan struct{}),
		httpServer: &http.Server{
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Ready はリスナーのバインド完了時に閉じられるチャンネルを返す
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr はバインド済みのリスナーのアドレスを返す（未バインドの場合はnil）
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Start はサーバーを起動し、コンテキストの終了かシグナルの受信まで待つ
// 1つのServerに対して呼び出せるのは1回のみ
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	// シグナルハンドリング（Readyの通知より前に登録する）
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	ln, err := net.Listen("tcp", s.config.ServerAddress())
	if err != nil {
		return fmt.Errorf("ポートのバインドに失敗: %w", err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	close(s.ready)

	port := s.config.Server.Port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	_, _ = color.New(color.FgGreen).Fprintf(s.out, "Started VPXTestServer on port %d.\n", port)

	// シャットダウン用のチャンネル
	serveCh := make(chan error, 1)

	// サーバーを別ゴルーチンで起動
	go func() {
		log.Printf("HTTPサーバーを起動しています: %s (配信ルート: %s)", ln.Addr(), s.config.Media.Root)
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveCh <- fmt.Errorf("サーバーの実行に失敗: %w", err)
		}
	}()

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		log.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Printf("シグナルを受信しました: %v", sig)
	case err := <-serveCh:
		return err
	}

	_, _ = color.New(color.FgYellow).Fprintln(s.out, "stopping server.")
	return s.Close()
}

// Close はリスナーと接続を即座に閉じる
// 処理中のリクエストの完了は待たない
func (s *Server) Close() error {
	if err := s.httpServer.Close(); err != nil {
		return fmt.Errorf("サーバーの停止に失敗: %w", err)
	}

	log.Println("サーバーを停止しました")
	return nil
}
