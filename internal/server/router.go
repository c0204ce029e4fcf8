package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vpxtestserver/internal/catalog"
)

// StaticServer は固定パス以外のリクエストを処理する静的ファイル配信機能
type StaticServer interface {
	// ServeStatic はリクエストのパス・メソッド・ヘッダーに従ってファイルを配信する
	ServeStatic(w http.ResponseWriter, r *http.Request)
}

// StaticFunc は関数をStaticServerとして扱うためのアダプタ
type StaticFunc func(w http.ResponseWriter, r *http.Request)

// ServeStatic は f(w, r) を呼び出す
func (f StaticFunc) ServeStatic(w http.ResponseWriter, r *http.Request) {
	f(w, r)
}

// DirStatic はrootディレクトリ配下のファイルを配信するStaticServerを返す
func DirStatic(root string) StaticServer {
	fs := http.FileServer(http.Dir(root))
	return StaticFunc(fs.ServeHTTP)
}

// DefaultRoutes は固定パスと接尾辞フィルタの対応表を返す
func DefaultRoutes() map[string]catalog.SuffixFilter {
	return map[string]catalog.SuffixFilter{
		"/ivf":    catalog.IVF,
		"/webm":   catalog.WebM,
		"/allvpx": catalog.AllVPX,
	}
}

// Router は固定パスをメディア一覧に、それ以外を静的ファイル配信に振り分ける
type Router struct {
	root   string
	static StaticServer
	engine *gin.Engine
}

// NewRouter は新しいRouterを作成する
func NewRouter(root string, routes map[string]catalog.SuffixFilter, static StaticServer, middleware ...gin.HandlerFunc) *Router {
	engine := gin.New()
	// 末尾スラッシュ付きのパスもリダイレクトせず静的ファイル配信に渡す
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false
	engine.HandleMethodNotAllowed = false

	engine.Use(gin.Recovery())
	engine.Use(middleware...)

	r := &Router{
		root:   root,
		static: static,
		engine: engine,
	}

	for path, filter := range routes {
		engine.GET(path, r.handleList(filter))
	}

	// GET以外のメソッドも含め、未登録のリクエストはすべて静的ファイル配信へ
	engine.NoRoute(r.handleStatic)

	return r
}

// ServeHTTP はhttp.Handlerを実装する
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

// handleList は接尾辞フィルタに一致するファイル一覧をJSONで返す
func (r *Router) handleList(filter catalog.SuffixFilter) gin.HandlerFunc {
	return func(c *gin.Context) {
		// クエリ付きのパスは固定パスと一致しないものとして扱う
		if c.Request.URL.RawQuery != "" || c.Request.URL.ForceQuery {
			r.handleStatic(c)
			return
		}

		paths, err := catalog.Scan(r.root, filter)
		if err != nil {
			log.Printf("メディア一覧の取得に失敗しました: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "scan_failed",
				"message": "メディアディレクトリの走査に失敗しました",
			})
			return
		}

		body, err := catalog.EncodeJSON(paths)
		if err != nil {
			log.Printf("メディア一覧のエンコードに失敗しました: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "encode_failed",
				"message": "メディア一覧のエンコードに失敗しました",
			})
			return
		}

		c.Data(http.StatusOK, "application/json", body)
	}
}

// handleStatic は静的ファイル配信に処理を委譲する
func (r *Router) handleStatic(c *gin.Context) {
	// ginはNoRouteの前に404を設定するため、暗黙の200で書き込む配信処理に備えて戻す
	c.Status(http.StatusOK)
	r.static.ServeStatic(c.Writer, c.Request)
}
