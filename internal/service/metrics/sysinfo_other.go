//go:build !linux

package metrics

// Load averages and free memory are reported as zero off Linux.
func readHostInfo() hostInfo {
	return hostInfo{}
}
