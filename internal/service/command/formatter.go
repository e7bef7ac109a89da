package command

import (
	"fmt"
	"strconv"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
	"github.com/pranavkumar389/downtime-monitor/internal/service/ui"
)

func formatUserLine(u core.User) string {
	return fmt.Sprintf("Name: %s %s Phone: %s Checks: %d", u.FirstName, u.LastName, u.Phone, u.Checks)
}

func formatCheckLine(c core.Check) string {
	return fmt.Sprintf("ID: %s %s %s State: %s", c.ID, c.UpperMethod(), c.Endpoint(), c.DisplayState())
}

func statsRows(s core.Stats) []ui.Row {
	return []ui.Row{
		{Key: "Load Average", Value: fmt.Sprintf("%.2f %.2f %.2f", s.LoadAverage[0], s.LoadAverage[1], s.LoadAverage[2])},
		{Key: "CPU Count", Value: strconv.Itoa(s.CPUCount)},
		{Key: "Free Memory", Value: strconv.FormatUint(s.FreeMemory, 10)},
		{Key: "Current Heap Allocated", Value: strconv.FormatUint(s.HeapAlloc, 10)},
		{Key: "Peak Heap Allocated", Value: strconv.FormatUint(s.PeakHeapAlloc, 10)},
		{Key: "Allocated Heap Used (%)", Value: strconv.Itoa(s.HeapUsedPercent)},
		{Key: "Available Heap Allocated (%)", Value: strconv.Itoa(s.HeapAvailablePercent)},
		{Key: "Uptime", Value: fmt.Sprintf("%d Seconds", int64(s.Uptime.Seconds()))},
	}
}
