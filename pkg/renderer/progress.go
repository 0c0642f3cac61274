package renderer

import (
	"sync/atomic"
	"time"
)

// progressInterval is how often the completed-pixel counter is polled
const progressInterval = 10 * time.Millisecond

// progressMonitor polls a shared counter until stopped and forwards it to a ProgressFunc
type progressMonitor struct {
	completed *atomic.Int64
	total     int64
	report    ProgressFunc
	stop      chan struct{}
	done      chan struct{}
}

func newProgressMonitor(completed *atomic.Int64, total int64, report ProgressFunc) *progressMonitor {
	return &progressMonitor{
		completed: completed,
		total:     total,
		report:    report,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the polling loop
func (pm *progressMonitor) Start() {
	go pm.run()
}

// Stop ends the polling loop after a final report of the counter
func (pm *progressMonitor) Stop() {
	close(pm.stop)
	<-pm.done
}

func (pm *progressMonitor) run() {
	defer close(pm.done)

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	last := int64(-1)
	for {
		select {
		case <-ticker.C:
			if done := pm.completed.Load(); done != last {
				last = done
				pm.notify(done)
			}
		case <-pm.stop:
			pm.notify(pm.completed.Load())
			return
		}
	}
}

func (pm *progressMonitor) notify(done int64) {
	if pm.report != nil {
		pm.report(done, pm.total)
	}
}

// LogProgress returns a ProgressFunc that reports every tenth of the frame through logf
func LogProgress(logf func(format string, v ...interface{})) ProgressFunc {
	nextDecile := int64(1)
	return func(done, total int64) {
		if total <= 0 {
			return
		}
		for nextDecile <= 10 && done*10 >= nextDecile*total {
			logf("rendered %d%% (%d/%d pixels)", nextDecile*10, done, total)
			nextDecile++
		}
	}
}
