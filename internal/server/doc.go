// Package server は、テスト用メディアを配信するHTTPサーバーを管理します。
//
// このパッケージは、HTTPサーバーの起動、ルーティング、
// メディア一覧エンドポイントの応答、静的ファイル配信への委譲を担当します。
//
// 責務:
//   - HTTPサーバーの起動と停止
//   - 固定パス（/ivf, /webm, /allvpx）のメディア一覧JSON応答
//   - それ以外のパスの静的ファイル配信への委譲
//   - リクエストログの出力
//
// 仕様:
//   - ルーティングはgin、静的ファイル配信は標準ライブラリのhttp.FileServerを使用
//   - 一覧はリクエストのたびにディレクトリを走査する（キャッシュなし）
//   - 割り込みシグナルでリスナーを閉じて終了する（処理中リクエストの待機はしない）
//   - 接続ごとのゴルーチンで並行処理し、設定により逐次処理に切り替えられる
package server
