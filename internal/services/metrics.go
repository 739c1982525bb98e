package services

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// SystemStatus is a point-in-time snapshot of the host and the store.
type SystemStatus struct {
	CapturedAt        time.Time `json:"capturedAt"`
	StoreOK           bool      `json:"storeOk"`
	ProcessRSSBytes   int64     `json:"processRssBytes"`
	SystemMemoryTotal int64     `json:"systemMemoryTotalBytes"`
	SystemMemoryUsed  int64     `json:"systemMemoryUsedBytes"`
	DiskTotalBytes    int64     `json:"diskTotalBytes"`
	DiskUsedBytes     int64     `json:"diskUsedBytes"`
	ProcessCpuLoad    float64   `json:"processCpuLoad"`
	SystemCpuLoad     float64   `json:"systemCpuLoad"`
	EventClients      int       `json:"eventClients"`
}

// CaptureStatus samples process, memory and disk usage and pings the store.
// Host sampling failures leave the corresponding fields at zero; a failed
// ping is logged and reported only as StoreOK=false.
func (t *Tracker) CaptureStatus(ctx context.Context, diskPath string) SystemStatus {
	status := SystemStatus{CapturedAt: time.Now().UTC()}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := t.Repo.Ping(pingCtx); err != nil {
		log.Printf("status: store ping failed: %v", err)
	} else {
		status.StoreOK = true
	}

	if proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid())); err == nil {
		if rss, _ := proc.MemoryInfoWithContext(ctx); rss != nil {
			status.ProcessRSSBytes = int64(rss.RSS)
		}
		if cpuPerc, err := proc.CPUPercentWithContext(ctx); err == nil {
			status.ProcessCpuLoad = cpuPerc / 100.0
		}
	}
	if memStat, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		status.SystemMemoryTotal = int64(memStat.Total)
		status.SystemMemoryUsed = int64(memStat.Total - memStat.Available)
	}
	diskStat, err := disk.UsageWithContext(ctx, diskPath)
	if err != nil {
		diskStat, err = disk.UsageWithContext(ctx, "/")
	}
	if err == nil {
		status.DiskTotalBytes = int64(diskStat.Total)
		status.DiskUsedBytes = int64(diskStat.Used)
	}
	if sysCPU, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(sysCPU) > 0 {
		status.SystemCpuLoad = sysCPU[0] / 100.0
	}
	if t.Events != nil {
		status.EventClients = t.Events.Count()
	}
	return status
}
