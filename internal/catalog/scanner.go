package catalog

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// relativeMarker は走査パスの先頭に付くルート相対の印
const relativeMarker = "./"

// Scan はrootを再帰的に走査し、フィルタに一致するファイルのパスを返す
//
// 一致判定は "./" から始まる走査パスに対して行い、返すパスからは "./" を取り除く。
// 一致がない場合は空のスライス（nilではない）を返す。
func Scan(root string, filter SuffixFilter) ([]string, error) {
	paths := []string{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("ディレクトリの走査に失敗 (%s): %w", path, err)
		}
		if d.IsDir() {
			return nil
		}

		// ディレクトリへのシンボリックリンクは辿らず、列挙もしない
		if d.Type()&fs.ModeSymlink != 0 {
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				return nil
			}
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("相対パスの算出に失敗 (%s): %w", path, err)
		}

		walkPath := relativeMarker + filepath.ToSlash(rel)
		if !filter.Match(walkPath) {
			return nil
		}

		// JSON文字列で正確に表現できない名前は一覧に含めない
		if !utf8.ValidString(walkPath) {
			log.Printf("UTF-8ではないファイル名を一覧から除外しました: %q", walkPath)
			return nil
		}

		paths = append(paths, strings.TrimPrefix(walkPath, relativeMarker))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
