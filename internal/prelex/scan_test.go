package prelex

import (
	"testing"

	"prelex/internal/token"
)

type scanCase struct {
	input string
	pos   int
	want  string // "" means no match
}

func runScan(t *testing.T, name string, fn Recognizer, kind token.Kind, cases []scanCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(name+"/"+tc.input, func(t *testing.T) {
			tok, ok := fn([]byte(tc.input), tc.pos)
			if tc.want == "" {
				if ok {
					t.Fatalf("expected no match, got %v %q", tok.Kind, tok.Text)
				}
				return
			}
			if !ok {
				t.Fatalf("expected %q, got no match", tc.want)
			}
			if tok.Kind != kind || tok.Text != tc.want {
				t.Fatalf("got %v %q, want %v %q", tok.Kind, tok.Text, kind, tc.want)
			}
			if int(tok.Span.Start) != tc.pos || int(tok.Span.End) != tc.pos+len(tc.want) {
				t.Fatalf("span %v does not match surface", tok.Span)
			}
		})
	}
}

func TestScanURL(t *testing.T) {
	runScan(t, "url", ScanURL, token.URL, []scanCase{
		{"https://example.com", 0, "https://example.com"},
		{"HTTP://EXAMPLE.COM/a_b~c", 0, "HTTP://EXAMPLE.COM/a_b~c"},
		{"http://x.jp/?q=a&b=c#frag", 0, "http://x.jp/?q=a&b=c#frag"},
		{"https://example.com/).,'", 0, "https://example.com/"},
		{"https://例え.jp", 0, ""},
		{"http://", 0, ""},
		{"https://...", 0, ""},
		{"ftp://example.com", 0, ""},
		{"見て https://a.b", 7, "https://a.b"},
	})
}

func TestScanEmail(t *testing.T) {
	runScan(t, "email", ScanEmail, token.Email, []scanCase{
		{"user@example.com", 0, "user@example.com"},
		{"first.last-1+x_y@sub.example.co.jp", 0, "first.last-1+x_y@sub.example.co.jp"},
		{"user@localhost", 0, ""},
		{"user@", 0, ""},
		{".user@example.com", 0, ""},
		{"user.@example.com", 0, ""},
		{"user@example.", 0, ""},
		{"user@example.com.", 0, "user@example.com"},
		{"@example.com", 0, ""},
	})
}

func TestScanDate(t *testing.T) {
	runScan(t, "date", ScanDate, token.Date, []scanCase{
		{"2024年", 0, "2024年"},
		{"2024年1月15日", 0, "2024年1月15日"},
		{"2024年1月", 0, "2024年1月"},
		{"2024年1月123日", 0, "2024年1月"},
		{"2024年月", 0, "2024年"},
		{"12345年", 0, ""},
		{"12345年", 1, "2345年"},
		{"2024", 0, ""},
		{"令和6年", 6, "6年"},
		{"12年", 1, "2年"},
	})
}

func TestScanTime(t *testing.T) {
	runScan(t, "time", ScanTime, token.Time, []scanCase{
		{"14時", 0, "14時"},
		{"14時30分", 0, "14時30分"},
		{"14時30分15秒", 0, "14時30分15秒"},
		{"14時60分", 0, "14時"},
		{"14時30分99秒", 0, "14時30分"},
		{"24時", 0, "24時"},
		{"25時", 0, ""},
		{"25時", 1, "5時"},
		{"123時", 1, "23時"},
		{"９時５分", 0, "９時５分"},
		{"14時30", 0, "14時"},
	})
}

func TestScanCurrency(t *testing.T) {
	runScan(t, "currency", ScanCurrency, token.Currency, []scanCase{
		{"100円", 0, "100円"},
		{"100万円", 0, "100万円"},
		{"2.5億円", 0, "2.5億円"},
		{"1兆円", 0, "1兆円"},
		{"1,980円", 0, "1,980円"},
		{"100万", 0, ""},
		{"100ドル", 0, ""},
		{"円", 0, ""},
	})
}

func TestScanStorage(t *testing.T) {
	runScan(t, "storage", ScanStorage, token.Storage, []scanCase{
		{"10GB", 0, "10GB"},
		{"10gb", 0, "10gb"},
		{"1.5TB", 0, "1.5TB"},
		{"512KB", 0, "512KB"},
		{"256MB", 0, "256MB"},
		{"100B", 0, "100B"},
		{"10G", 0, ""},
		{"10GiB", 0, ""},
	})
}

func TestScanPercentage(t *testing.T) {
	runScan(t, "percentage", ScanPercentage, token.Percentage, []scanCase{
		{"50%", 0, "50%"},
		{"3.14%", 0, "3.14%"},
		{"１００％", 0, "１００％"},
		{"50", 0, ""},
		{"%", 0, ""},
	})
}

func TestScanVersion(t *testing.T) {
	runScan(t, "version", ScanVersion, token.Version, []scanCase{
		{"v2.0.1", 0, "v2.0.1"},
		{"1.2", 0, "1.2"},
		{"1.2.3.4.5", 0, "1.2.3.4.5"},
		{"1.2.x", 0, "1.2"},
		{"v2", 0, ""},
		{"2", 0, ""},
		{"v.1", 0, ""},
		{"dev2.0", 2, "v2.0"},
		{"dev2.0", 3, "2.0"},
	})
}

func TestScanHashtag(t *testing.T) {
	runScan(t, "hashtag", ScanHashtag, token.Hashtag, []scanCase{
		{"#golang", 0, "#golang"},
		{"#go_1", 0, "#go_1"},
		{"＃日本語", 0, "＃日本語"},
		{"#ラーメン好き！", 0, "#ラーメン好き"},
		{"#", 0, ""},
		{"#!", 0, ""},
		{"# tag", 0, ""},
	})
}

func TestScanMention(t *testing.T) {
	runScan(t, "mention", ScanMention, token.Mention, []scanCase{
		{"@gopher", 0, "@gopher"},
		{"@go_pher99 hi", 0, "@go_pher99"},
		{"@", 0, ""},
		{"@日本", 0, ""},
	})
}

func TestScanBoundary(t *testing.T) {
	runScan(t, "boundary", ScanBoundary, token.Boundary, []scanCase{
		{"。", 0, "。"},
		{"！", 0, "！"},
		{"？", 0, "？"},
		{"!", 0, "!"},
		{"?", 0, "?"},
		{"\n", 0, "\n"},
		{".", 0, ""},
		{"、", 0, ""},
		{"", 0, ""},
	})
}
