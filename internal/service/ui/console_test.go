package ui

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(width int) (*Console, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewConsole(buf, WithWidth(func() int { return width })), buf
}

func TestHorizontalLine(t *testing.T) {
	c, buf := newTestConsole(20)
	c.HorizontalLine()
	assert.Equal(t, strings.Repeat("-", 20)+"\n", buf.String())
}

func TestWidthFallback(t *testing.T) {
	c, buf := newTestConsole(0)
	c.HorizontalLine()
	assert.Equal(t, strings.Repeat("-", DefaultTerminalWidth)+"\n", buf.String())
}

func TestCentered(t *testing.T) {
	tests := []struct {
		name  string
		width int
		text  string
		want  string
	}{
		{name: "even padding", width: 20, text: "STATS", want: "       STATS\n"},
		{name: "trims input", width: 10, text: "  ab  ", want: "    ab\n"},
		{name: "blank input", width: 10, text: "   ", want: "\n"},
		{name: "wider than terminal", width: 4, text: "SYSTEM", want: "SYSTEM\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, buf := newTestConsole(tt.width)
			c.Centered(tt.text)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestVerticalSpace(t *testing.T) {
	c, buf := newTestConsole(10)
	c.VerticalSpace(2)
	assert.Equal(t, "\n\n", buf.String())

	buf.Reset()
	c.VerticalSpace(0)
	assert.Equal(t, "\n", buf.String())
}

func TestRenderTable_PadsKeyColumn(t *testing.T) {
	c, buf := newTestConsole(80)
	c.RenderTable([]Row{{Key: "CPU Count", Value: "8"}})

	want := "CPU Count" + strings.Repeat(" ", KeyColumnWidth-len("CPU Count")) + "8\n\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderTable_LongKeyDoesNotPanic(t *testing.T) {
	c, buf := newTestConsole(80)
	longKey := strings.Repeat("k", KeyColumnWidth+15)

	require.NotPanics(t, func() {
		c.RenderTable([]Row{{Key: longKey, Value: "value"}})
	})
	assert.Equal(t, longKey+"value\n\n", buf.String())
}

func TestRenderTable_KeyExactlyColumnWidth(t *testing.T) {
	c, buf := newTestConsole(80)
	key := strings.Repeat("k", KeyColumnWidth)
	c.RenderTable([]Row{{Key: key, Value: "v"}})
	assert.Equal(t, key+"v\n\n", buf.String())
}

func TestHeader(t *testing.T) {
	c, buf := newTestConsole(10)
	c.Header("MAN")

	line := strings.Repeat("-", 10)
	assert.Equal(t, line+"\n   MAN\n"+line+"\n\n\n", buf.String())
}

func TestDump_PlainJSON(t *testing.T) {
	c, buf := newTestConsole(80)
	c.Dump(map[string]any{"id": "abc", "state": "up"})

	assert.Equal(t, "{\n  \"id\": \"abc\",\n  \"state\": \"up\"\n}\n", buf.String())
}

func TestDump_ColorKeepsContent(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewConsole(buf, WithColor(true), WithWidth(func() int { return 80 }))
	c.Dump(map[string]any{"id": "abc"})

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "abc")
}

func TestConcurrentWritesKeepLinesWhole(t *testing.T) {
	c, buf := newTestConsole(80)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Println("Name: Ada Lovelace Phone: 5551234567 Checks: 2")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 50)
	for _, line := range lines {
		assert.Equal(t, "Name: Ada Lovelace Phone: 5551234567 Checks: 2", line)
	}
}
