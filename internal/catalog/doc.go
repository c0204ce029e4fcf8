// Package catalog は配信ディレクトリ内のテスト用メディアファイルを列挙する。
//
// 責務:
//   - ディレクトリの再帰的な走査
//   - 接尾辞によるファイルパスの絞り込み
//   - 結果のJSON配列へのエンコード
//
// 仕様:
//   - キャッシュは持たず、呼び出しのたびにファイルシステムを読み直す
//   - 接尾辞の比較は大文字小文字を区別する単純な末尾一致（拡張子解析はしない）
//   - 走査順はファイルシステムの走査順のまま（ソートしない）
package catalog
