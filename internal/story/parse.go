package story

import "strings"

const (
	genreMarker = "Genre:"
	toneMarker  = "Tone:"
)

// ParseGenreTone 逐行扫描模型输出：包含 "Genre:" 的行设置题材，
// 否则包含 "Tone:" 的行设置基调。每个字段以第一次匹配为准，缺少标记时字段为 nil。
func ParseGenreTone(text string) (genre, tone *string) {
	for _, line := range strings.Split(text, "\n") {
		if _, after, ok := strings.Cut(line, genreMarker); ok {
			if genre == nil {
				v := strings.TrimSpace(after)
				genre = &v
			}
			continue
		}
		if _, after, ok := strings.Cut(line, toneMarker); ok && tone == nil {
			v := strings.TrimSpace(after)
			tone = &v
		}
	}
	return genre, tone
}
