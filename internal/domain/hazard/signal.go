package hazard

import "strings"

// SignalWord is a report's severity marker in both languages.
type SignalWord struct {
	EN string
	ZH string
}

var signalWordsZh = map[string]string{
	"Danger":  "危險",
	"Warning": "警告",
}

// NewSignalWord translates an upstream signal word.  Unknown words are echoed
// in both fields.
func NewSignalWord(raw string) SignalWord {
	raw = strings.TrimSpace(raw)
	if zh, ok := signalWordsZh[raw]; ok {
		return SignalWord{EN: raw, ZH: zh}
	}
	return SignalWord{EN: raw, ZH: raw}
}

// IsZero reports whether no signal word was recorded.
func (s SignalWord) IsZero() bool { return s.EN == "" }
