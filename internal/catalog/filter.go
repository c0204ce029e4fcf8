package catalog

import "strings"

// SuffixFilter はファイルパスを絞り込む接尾辞の不変な集合
type SuffixFilter struct {
	suffixes []string
}

// 定義済みのフィルタ
var (
	IVF    = NewSuffixFilter("ivf")
	WebM   = NewSuffixFilter("webm")
	AllVPX = NewSuffixFilter("ivf", "webm")
)

// NewSuffixFilter は新しいSuffixFilterを作成する
func NewSuffixFilter(suffixes ...string) SuffixFilter {
	s := make([]string, len(suffixes))
	copy(s, suffixes)
	return SuffixFilter{suffixes: s}
}

// Match はパスがいずれかの接尾辞で終わるかを判定する
func (f SuffixFilter) Match(path string) bool {
	for _, suffix := range f.suffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// Suffixes は接尾辞のコピーを返す
func (f SuffixFilter) Suffixes() []string {
	s := make([]string, len(f.suffixes))
	copy(s, f.suffixes)
	return s
}
