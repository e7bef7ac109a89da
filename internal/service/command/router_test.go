package command

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

func TestProcessInputBlank(t *testing.T) {
	h := newHarness(t)

	assert.Empty(t, h.run(""))
	assert.Empty(t, h.run("   \t  "))
	assert.Zero(t, h.store.readCount())
}

func TestProcessInputUnrecognized(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, "Sorry! Try again\n", h.run("flibbertigibbet"))
}

func TestProcessInputExit(t *testing.T) {
	h := newHarness(t)

	assert.Empty(t, h.run("exit"))
	assert.Equal(t, []int{0}, h.exits)
}

func TestHelpListsEveryCommand(t *testing.T) {
	h := newHarness(t)

	out := h.run("help")
	assert.Contains(t, out, "CLI MANUAL")
	for _, spec := range h.router.ListCommands() {
		assert.Contains(t, out, spec.Usage)
		assert.Contains(t, out, spec.Description)
	}
	assert.Equal(t, out, h.run("man"))
}

func TestStats(t *testing.T) {
	h := newHarness(t)
	out := h.run("stats")
	assert.Contains(t, out, "SYSTEM STATISTICS")
	for _, key := range []string{
		"Load Average", "CPU Count", "Free Memory", "Current Heap Allocated",
		"Peak Heap Allocated", "Allocated Heap Used (%)", "Available Heap Allocated (%)", "Uptime",
	} {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, "0 Seconds")
}

func TestStatsRows(t *testing.T) {
	rows := statsRows(core.Stats{
		LoadAverage:          [3]float64{0.5, 1.25, 2},
		CPUCount:             8,
		FreeMemory:           1024,
		HeapAlloc:            300,
		PeakHeapAlloc:        600,
		HeapUsedPercent:      30,
		HeapAvailablePercent: 70,
		Uptime:               90*time.Second + 500*time.Millisecond,
	})

	require.Len(t, rows, 8)
	assert.Equal(t, "0.50 1.25 2.00", rows[0].Value)
	assert.Equal(t, "8", rows[1].Value)
	assert.Equal(t, "30", rows[5].Value)
	assert.Equal(t, "70", rows[6].Value)
	assert.Equal(t, "90 Seconds", rows[7].Value)
}

func TestListUsers(t *testing.T) {
	h := newHarness(t)
	h.store.put(core.CollectionUsers, "5551234567", core.Record{
		"firstName": "Ada", "lastName": "Lovelace", "phone": "5551234567",
		"checks": []any{"c1", "c2"},
	})
	h.store.put(core.CollectionUsers, "5559876543", core.Record{
		"firstName": "Alan", "lastName": "Turing", "phone": "5559876543",
	})

	out := h.run("list users")
	assert.Contains(t, out, "Name: Ada Lovelace Phone: 5551234567 Checks: 2\n")
	assert.Contains(t, out, "Name: Alan Turing Phone: 5559876543 Checks: 0\n")
}

func TestListUsersEmptyStore(t *testing.T) {
	h := newHarness(t)
	assert.Empty(t, h.run("list users"))
}

func TestMoreUserInfo(t *testing.T) {
	h := newHarness(t)
	h.store.put(core.CollectionUsers, "u1", core.Record{
		"firstName": "Ada", "hashedPassword": "secret",
	})

	out := h.run("more user info --u1")
	assert.Contains(t, out, `"firstName": "Ada"`)
	assert.NotContains(t, out, "hashedPassword")
	assert.NotContains(t, out, "secret")
}

func TestMoreUserInfoMissing(t *testing.T) {
	h := newHarness(t)

	assert.Empty(t, h.run("more user info --nobody"))
	assert.Empty(t, h.run("more user info"))
}

func TestListChecksFilters(t *testing.T) {
	h := newHarness(t)
	h.store.put(core.CollectionChecks, "a", core.Record{"id": "a", "method": "get", "protocol": "https", "url": "a.example", "state": "up"})
	h.store.put(core.CollectionChecks, "b", core.Record{"id": "b", "method": "post", "protocol": "http", "url": "b.example", "state": "down"})
	h.store.put(core.CollectionChecks, "c", core.Record{"id": "c", "method": "put", "protocol": "http", "url": "c.example"})

	lineA := "ID: a GET https://a.example State: up\n"
	lineB := "ID: b POST http://b.example State: down\n"
	lineC := "ID: c PUT http://c.example State: unknown\n"

	tests := []struct {
		line    string
		want    []string
		notWant []string
	}{
		{line: "list checks", want: []string{lineA, lineB, lineC}},
		{line: "list checks --up", want: []string{lineA}, notWant: []string{lineB, lineC}},
		{line: "list checks --down", want: []string{lineB, lineC}, notWant: []string{lineA}},
		{line: "list checks --up --down", want: []string{lineA, lineB, lineC}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			out := h.run(tt.line)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, out, nw)
			}
		})
	}
}

func TestMoreCheckInfo(t *testing.T) {
	h := newHarness(t)
	h.store.put(core.CollectionChecks, "c1", core.Record{"id": "c1", "timeoutSeconds": float64(3)})

	out := h.run("more check info --c1")
	assert.Contains(t, out, `"id": "c1"`)
	assert.Contains(t, out, `"timeoutSeconds": 3`)

	assert.Empty(t, h.run("more check info --missing"))
}

func TestListLogs(t *testing.T) {
	h := newHarness(t)
	h.archive.names = []string{"abc-1700000000", "current", "def-1700000100"}

	out := h.run("list logs")
	assert.Contains(t, out, "abc-1700000000\n")
	assert.Contains(t, out, "def-1700000100\n")
	assert.NotContains(t, out, "current")
}

func TestMoreLogInfo(t *testing.T) {
	h := newHarness(t)
	h.archive.files["abc-1"] = strings.Join([]string{
		`{"check": "c1", "outcome": "up"}`,
		`{not json`,
		`{}`,
		``,
	}, "\n")

	out := h.run("more log info --abc-1")
	assert.Equal(t, 1, strings.Count(out, `"check": "c1"`))
	assert.Equal(t, 1, strings.Count(out, "{\n"))
	assert.NotContains(t, out, "not json")
}

func TestMoreLogInfoMissingArchive(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, "\n", h.run("more log info --nope"))
}

func TestResponderPanicIsRecovered(t *testing.T) {
	h := newHarness(t)
	h.router.async.Go(context.Background(), func() { panic("boom") })
	h.router.Wait()

	h.store.put(core.CollectionUsers, "u1", core.Record{"firstName": "Ada"})
	assert.Contains(t, h.run("list users"), "Name: Ada")
}
