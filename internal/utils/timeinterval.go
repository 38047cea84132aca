package utils

import "time"

type IntervalTimer interface {
	Stop()
}

type intervalTimer struct {
	done chan struct{}
}

func (t *intervalTimer) Stop() {
	close(t.done)
}

// SetIntervalTimer invokes function every duration until Stop is called.
func SetIntervalTimer(duration time.Duration, function func()) IntervalTimer {
	ticker := time.NewTicker(duration)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				function()
			case <-done:
				return
			}
		}
	}()
	return &intervalTimer{done: done}
}
