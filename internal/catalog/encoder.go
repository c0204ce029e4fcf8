package catalog

import (
	"fmt"

	"github.com/goccy/go-json"
)

// EncodeJSON はパスの一覧を入力順のままJSON文字列配列にエンコードする
func EncodeJSON(paths []string) ([]byte, error) {
	if paths == nil {
		paths = []string{}
	}

	data, err := json.Marshal(paths)
	if err != nil {
		return nil, fmt.Errorf("JSONエンコードに失敗: %w", err)
	}
	return data, nil
}
