package utils

import (
	"log/slog"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

type SystemSnapshot struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
}

// GetCPUUsage returns CPU usage since the previous call as a percentage.
// It does not block.
func GetCPUUsage() float64 {
	percentage, err := cpu.Percent(0, false)
	if err != nil {
		slog.Warn("reading cpu usage", "error", err)
		return 0
	}
	if len(percentage) > 0 {
		return percentage[0]
	}
	return 0
}

func GetMemoryUsage() float64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		slog.Warn("reading memory usage", "error", err)
		return 0
	}
	return vm.UsedPercent
}

func GetSystemSnapshot() SystemSnapshot {
	return SystemSnapshot{
		CPUPercent:    GetCPUUsage(),
		MemoryPercent: GetMemoryUsage(),
	}
}
