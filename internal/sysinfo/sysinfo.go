// Package sysinfo collects host metadata for benchmark reports. The
// measurement core never looks at any of this; it rides along on the result
// record so a report can say where its numbers came from.
package sysinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Env describes the machine and runtime a benchmark ran on.
type Env struct {
	Hostname      string `json:"hostname,omitempty"`
	OS            string `json:"os"`
	Platform      string `json:"platform,omitempty"`
	KernelVersion string `json:"kernel_version,omitempty"`
	CPUModel      string `json:"cpu_model,omitempty"`
	LogicalCores  int    `json:"logical_cores"`
	TotalMemory   uint64 `json:"total_memory_bytes,omitempty"`
	GoVersion     string `json:"go_version"`
	Arch          string `json:"arch"`
}

// Collect gathers best-effort host metadata. Probes that fail leave their
// fields zero; a report with gaps beats no report.
func Collect() Env {
	env := Env{
		OS:           runtime.GOOS,
		Arch:         runtime.GOARCH,
		GoVersion:    runtime.Version(),
		LogicalCores: runtime.NumCPU(),
	}

	if info, err := host.Info(); err == nil {
		env.Hostname = info.Hostname
		env.Platform = info.Platform
		env.KernelVersion = info.KernelVersion
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		env.CPUModel = infos[0].ModelName
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		env.TotalMemory = vm.Total
	}

	return env
}
