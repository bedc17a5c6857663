// Package locale translates the tray menu labels.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.SimplifiedChinese,
}

var matcher = language.NewMatcher(supported)

var zhHans = map[string]string{
	"Bind Media Keys":        "绑定媒体键",
	"Bind Function Keys":     "绑定功能键",
	"Show Playing Indicator": "显示播放指示",
	"Quit":                   "退出",
	"Media controls":         "媒体控制",
}

func init() {
	for key, msg := range zhHans {
		if err := message.SetString(language.SimplifiedChinese, key, msg); err != nil {
			panic(err)
		}
	}
}

// Match picks the best supported language for the preferred locales, given
// as BCP 47 tags or POSIX locale names such as "zh_CN.UTF-8".
func Match(preferred ...string) language.Tag {
	var tags []language.Tag
	for _, p := range preferred {
		if p = normalize(p); p == "" {
			continue
		}
		if t, err := language.Parse(p); err == nil {
			tags = append(tags, t)
		}
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// FromEnv matches the locale from the standard environment variables.
func FromEnv() language.Tag {
	return Match(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
}

// Printer returns a printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

func normalize(s string) string {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}
