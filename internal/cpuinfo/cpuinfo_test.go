package cpuinfo

import "testing"

func TestReport(t *testing.T) {
	info := Report()
	if info.NumCores < 0 {
		t.Errorf("NumCores = %d, want >= 0", info.NumCores)
	}
}
