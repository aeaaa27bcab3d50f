// Package cpuinfo reports the host CPU's brand and feature flags for
// diagnostic output. The scan itself is scalar and gates nothing on these
// flags; they exist to make throughput numbers from different hosts
// comparable.
package cpuinfo

import "github.com/klauspost/cpuid/v2"

// Info summarizes the fields cmd/jsontokendump's -diag flag prints.
type Info struct {
	BrandName string
	NumCores  int
	HasAVX2   bool
	HasSSE42  bool
}

// Report returns the current process's cpuid.CPU snapshot.
func Report() Info {
	return Info{
		BrandName: cpuid.CPU.BrandName,
		NumCores:  cpuid.CPU.PhysicalCores,
		HasAVX2:   cpuid.CPU.Supports(cpuid.AVX2),
		HasSSE42:  cpuid.CPU.Supports(cpuid.SSE42),
	}
}
