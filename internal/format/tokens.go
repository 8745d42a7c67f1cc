package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"prelex/internal/prelex"
	"prelex/internal/source"
	"prelex/internal/token"
	"prelex/internal/value"
)

// Position is a resolved 1-based line and byte column.
type Position struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// ItemOutput is the JSON form of one token or span.
type ItemOutput struct {
	Kind  string   `json:"kind"` // token kind or "Span"
	Text  string   `json:"text"`
	Start uint32   `json:"start"`
	End   uint32   `json:"end"`
	POS   string   `json:"pos,omitempty"`
	From  Position `json:"from"`
	To    Position `json:"to"`
	Value string   `json:"value,omitempty"`
}

// FileOutput is the JSON document of one scanned file.
type FileOutput struct {
	Path   string         `json:"path"`
	Items  []ItemOutput   `json:"items"`
	Counts map[string]int `json:"counts"`
}

// spanKind is the label of unrecognized ranges.
const spanKind = "Span"

var kindColors = map[token.Kind]*color.Color{
	token.URL:        color.New(color.FgBlue, color.Underline),
	token.Email:      color.New(color.FgBlue),
	token.Date:       color.New(color.FgGreen),
	token.Time:       color.New(color.FgGreen),
	token.Currency:   color.New(color.FgYellow),
	token.Storage:    color.New(color.FgYellow),
	token.Percentage: color.New(color.FgYellow),
	token.Version:    color.New(color.FgCyan),
	token.Hashtag:    color.New(color.FgMagenta),
	token.Mention:    color.New(color.FgMagenta),
	token.Boundary:   color.New(color.FgRed, color.Bold),
}

var spanColor = color.New(color.Faint)

// paint colors s with c when enabled; color.Color.Sprint also honours the
// global color.NoColor switch, so the explicit flag wins here.
func paint(c *color.Color, enabled bool, s string) string {
	if !enabled || c == nil {
		return s
	}
	cc := *c
	cc.EnableColor()
	return cc.Sprint(s)
}

// collect resolves items of one file for every renderer.
func collect(fs *source.FileSet, id source.FileID, res prelex.Result, opts Options) []ItemOutput {
	items := res.Items()
	out := make([]ItemOutput, 0, len(items))
	for _, it := range items {
		if it.Token == nil && !opts.ShowSpans {
			continue
		}
		from, to := fs.Resolve(id, it.Span)
		o := ItemOutput{
			Kind:  spanKind,
			Text:  string(it.Span.Slice(fs.Get(id).Content)),
			Start: it.Span.Start,
			End:   it.Span.End,
			From:  Position(from),
			To:    Position(to),
		}
		if tok := it.Token; tok != nil {
			o.Kind = tok.Kind.String()
			o.Text = tok.Text
			o.POS = tok.POS.String()
			if opts.Values {
				if v, err := value.Of(*tok); err == nil {
					o.Value = v.String()
				}
			}
		}
		out = append(out, o)
	}
	return out
}

func counts(res prelex.Result) map[string]int {
	out := make(map[string]int)
	for k, n := range res.Counts() {
		out[k.String()] = n
	}
	return out
}

// Pretty выводит элементы в человекочитаемом формате:
//
//	1: Date        "2024年1月15日"          1:1-1:18    Noun  = 2024-01-15
func Pretty(w io.Writer, fs *source.FileSet, id source.FileID, res prelex.Result, opts Options) error {
	width := opts.surfaceWidth()
	for i, o := range collect(fs, id, res, opts) {
		var c *color.Color
		if k, ok := token.ParseKind(o.Kind); ok {
			c = kindColors[k]
		} else {
			c = spanColor
		}
		surface := fit(strconv.Quote(o.Text), width)
		pos := fmt.Sprintf("%d:%d-%d:%d", o.From.Line, o.From.Col, o.To.Line, o.To.Col)
		line := fmt.Sprintf("%4d: %s %s %-11s %-6s",
			i+1, paint(c, opts.Color, fmt.Sprintf("%-10s", o.Kind)), surface, pos, o.POS)
		if o.Value != "" {
			line += " = " + o.Value
		}
		if _, err := fmt.Fprintln(w, trimRight(line)); err != nil {
			return err
		}
	}
	return nil
}

// fit pads or truncates s to exactly width terminal cells.
func fit(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

func trimRight(s string) string {
	end := len(s)
	for end > 0 && s[end-1] == ' ' {
		end--
	}
	return s[:end]
}

// JSON выводит результат файла одним JSON документом.
func JSON(w io.Writer, fs *source.FileSet, id source.FileID, res prelex.Result, opts Options) error {
	doc := FileOutput{
		Path:   fs.Get(id).Path,
		Items:  collect(fs, id, res, opts),
		Counts: counts(res),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// jsonlItem carries the path on every line so streams of files stay
// self-describing.
type jsonlItem struct {
	Path string `json:"path"`
	ItemOutput
}

// JSONL выводит по одному JSON объекту на элемент.
func JSONL(w io.Writer, fs *source.FileSet, id source.FileID, res prelex.Result, opts Options) error {
	enc := json.NewEncoder(w)
	path := fs.Get(id).Path
	for _, o := range collect(fs, id, res, opts) {
		if err := enc.Encode(jsonlItem{Path: path, ItemOutput: o}); err != nil {
			return err
		}
	}
	return nil
}

// Render dispatches on kind.
func Render(w io.Writer, kind Kind, fs *source.FileSet, id source.FileID, res prelex.Result, opts Options) error {
	switch kind {
	case KindJSON:
		return JSON(w, fs, id, res, opts)
	case KindJSONL:
		return JSONL(w, fs, id, res, opts)
	default:
		return Pretty(w, fs, id, res, opts)
	}
}
