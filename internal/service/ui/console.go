package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
)

// KeyColumnWidth is the fixed width of the key column in RenderTable.
const KeyColumnWidth = 60

// Row is one key/value line of a console table.
type Row struct {
	Key   string
	Value string
}

// Console renders operator-facing output. Each call issues a single write so
// output from concurrent responders interleaves by whole lines or blocks.
type Console struct {
	mu    sync.Mutex
	out   io.Writer
	width func() int
	color bool
}

type Option func(*Console)

func WithWidth(fn func() int) Option {
	return func(c *Console) {
		c.width = fn
	}
}

func WithColor(enabled bool) Option {
	return func(c *Console) {
		c.color = enabled
	}
}

func NewConsole(out io.Writer, opts ...Option) *Console {
	c := &Console{
		out:   out,
		width: TerminalWidth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) Width() int {
	if c.width == nil {
		return DefaultTerminalWidth
	}
	if w := c.width(); w > 0 {
		return w
	}
	return DefaultTerminalWidth
}

func (c *Console) HorizontalLine() {
	c.write(strings.Repeat("-", c.Width()) + "\n")
}

func (c *Console) Centered(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		c.write("\n")
		return
	}
	padding := (c.Width() - len(text)) / 2
	if padding < 0 {
		padding = 0
	}
	c.write(strings.Repeat(" ", padding) + text + "\n")
}

// VerticalSpace writes n blank lines; n below 1 counts as 1.
func (c *Console) VerticalSpace(n int) {
	if n < 1 {
		n = 1
	}
	c.write(strings.Repeat("\n", n))
}

// Header renders a full-width titled banner followed by two blank lines.
func (c *Console) Header(title string) {
	line := strings.Repeat("-", c.Width())
	padding := (c.Width() - len(title)) / 2
	if padding < 0 {
		padding = 0
	}
	c.write(line + "\n" + strings.Repeat(" ", padding) + title + "\n" + line + "\n\n\n")
}

// RenderTable writes each row as a highlighted key padded to KeyColumnWidth
// followed by the value, with a blank line after every row. Keys longer than
// the column are written as-is with the value right after them.
func (c *Console) RenderTable(rows []Row) {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(c.highlightKey(row.Key))
		if pad := KeyColumnWidth - len(row.Key); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(row.Value)
		b.WriteString("\n\n")
	}
	c.write(b.String())
}

// Dump writes v as indented JSON, syntax highlighted when color is enabled.
func (c *Console) Dump(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		c.write(fmt.Sprintf("%v\n", v))
		return
	}
	text := string(data)
	if c.color {
		text = highlightJSON(text)
	}
	c.write(strings.TrimRight(text, "\n") + "\n")
}

func (c *Console) Println(text string) {
	c.write(text + "\n")
}

func (c *Console) Banner(text string) {
	if c.color {
		text = BannerStyle.Render(text)
	}
	c.write(text + "\n")
}

func (c *Console) highlightKey(key string) string {
	if !c.color {
		return key
	}
	return KeyStyle.Render(key)
}

func (c *Console) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, s)
}
