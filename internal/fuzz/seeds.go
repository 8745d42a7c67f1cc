package fuzztests

import (
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB

var textSeeds = []string{
	"",
	"今日は2024年1月15日です。",
	"会議は14時30分から。価格は¥1,500、容量は500GB、割引は20%です。",
	"詳細は https://example.com/path?q=1 をご覧ください。",
	"連絡先: user.name@example.co.jp まで！",
	"v1.2.3 がリリースされました？ #リリース @dev_team",
	"１２３４円　３．５％　２０２４年１２月３１日",
	"See http://a.b/c).",
	"1.2.3.4.5 and 3.14159% and 100円",
	"@@## ..。。！？!?",
	"\xff\xfe invalid utf-8 \xe3\x81",
	"12345678901234567890GB",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range textSeeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		return append([]byte(nil), src[:maxSeedBytes]...)
	}
	return src
}
