package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		preferred []string
		want      language.Tag
	}{
		{name: "nothing", preferred: nil, want: language.English},
		{name: "posix chinese", preferred: []string{"zh_CN.UTF-8"}, want: language.SimplifiedChinese},
		{name: "bcp47 chinese", preferred: []string{"zh-Hans"}, want: language.SimplifiedChinese},
		{name: "C locale", preferred: []string{"C"}, want: language.English},
		{name: "unsupported", preferred: []string{"de_DE.UTF-8"}, want: language.English},
		{name: "first usable wins", preferred: []string{"", "zh_CN", "en_US"}, want: language.SimplifiedChinese},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.preferred...)
			base, _ := got.Base()
			wantBase, _ := tt.want.Base()
			assert.Equal(t, wantBase, base)
		})
	}
}

func TestPrinter(t *testing.T) {
	zh := Printer(language.SimplifiedChinese)
	assert.Equal(t, "绑定媒体键", zh.Sprintf("Bind Media Keys"))
	assert.Equal(t, "退出", zh.Sprintf("Quit"))

	en := Printer(language.English)
	assert.Equal(t, "Show Playing Indicator", en.Sprintf("Show Playing Indicator"))
}
