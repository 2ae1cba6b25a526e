package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"
	"time"
)

// tickBudget is the wall-clock budget for one simulation tick at 60 TPS
const tickBudget = time.Second / 60

// slowTickTrigger is how many over-budget ticks in a row trigger a capture
const slowTickTrigger = 30

// Profiler watches simulation tick durations and captures a CPU profile
// when the game sustains over-budget ticks
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string

	slowStreak int
}

// NewProfiler creates a profiler writing captures under profiles/
func NewProfiler() *Profiler {
	profilesDir := "profiles"
	os.MkdirAll(profilesDir, 0755)

	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     profilesDir,
	}
}

// RecordTick feeds one tick's duration; a sustained streak of over-budget
// ticks starts a capture
func (p *Profiler) RecordTick(d time.Duration) {
	if d <= tickBudget {
		p.slowStreak = 0
		return
	}

	p.slowStreak++
	if p.slowStreak >= slowTickTrigger {
		p.slowStreak = 0
		if err := p.Capture("slow-tick"); err == nil {
			log.Printf("profiler: sustained slow ticks, capturing CPU profile")
		}
	}
}

// Capture records a CPU profile in the background. Rate-limited by the
// capture cooldown so a long stall produces one capture, not dozens.
func (p *Profiler) Capture(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown")
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(p.profilesDir, fmt.Sprintf("%s-%s.cpu.prof", reason, timestamp))

	// Capture in a goroutine to avoid stalling the game loop
	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		file, err := os.Create(path)
		if err != nil {
			log.Printf("profiler: create %s: %v", path, err)
			return
		}
		defer file.Close()

		if err := pprof.StartCPUProfile(file); err != nil {
			log.Printf("profiler: start profile: %v", err)
			return
		}
		time.Sleep(p.captureDuration)
		pprof.StopCPUProfile()

		log.Printf("profiler: CPU profile saved to %s", path)
	}()

	return nil
}
