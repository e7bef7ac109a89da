//go:build linux

package metrics

import (
	"golang.org/x/sys/unix"
)

// Kernel load averages are fixed point with 16 fractional bits.
const loadScale = 1 << 16

func readHostInfo() hostInfo {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return hostInfo{}
	}

	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	return hostInfo{
		Loads: [3]float64{
			float64(info.Loads[0]) / loadScale,
			float64(info.Loads[1]) / loadScale,
			float64(info.Loads[2]) / loadScale,
		},
		FreeMemory:  uint64(info.Freeram) * unit,
		TotalMemory: uint64(info.Totalram) * unit,
	}
}
