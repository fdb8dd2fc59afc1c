package leaderboard

import (
	"strings"
	"unicode"

	"github.com/lixenwraith/neon-snake/parameter"
)

// Entry is one recorded score
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// NormalizeName keeps printable runes, trims spaces and truncates to NameMaxLength
// An empty result becomes DefaultPlayerName
func NormalizeName(name string) string {
	var b strings.Builder
	n := 0
	for _, r := range strings.TrimSpace(name) {
		if !unicode.IsPrint(r) {
			continue
		}
		if n == parameter.NameMaxLength {
			break
		}
		b.WriteRune(r)
		n++
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return parameter.DefaultPlayerName
	}
	return out
}
