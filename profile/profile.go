// Package profile selects between the Gio frame timing recorder and
// pkg/profile from a single command line option.
package profile

import (
	"fmt"
	"log"

	"gioui.org/layout"
	"gioui.org/x/profiling"
	"github.com/pkg/profile"
)

// Opt specifies the various profiling options.
type Opt string

const (
	None      Opt = "none"
	CPU       Opt = "cpu"
	Memory    Opt = "mem"
	Block     Opt = "block"
	Goroutine Opt = "goroutine"
	Mutex     Opt = "mutex"
	Trace     Opt = "trace"
	Gio       Opt = "gio"
)

// Options lists every accepted Opt, for flag help.
var Options = []Opt{None, CPU, Memory, Block, Goroutine, Mutex, Trace, Gio}

// Parse validates a command line value.
func Parse(s string) (Opt, error) {
	for _, o := range Options {
		if string(o) == s {
			return o, nil
		}
	}
	if s == "" {
		return None, nil
	}
	return None, fmt.Errorf("unknown profile %q, use one of %v", s, Options)
}

// Profiler is a running profile.
type Profiler struct {
	stop     func()
	recorder *profiling.CSVTimingRecorder
}

// Start profiling. The returned Profiler must be stopped to flush results.
func (o Opt) Start() *Profiler {
	var p Profiler
	switch o {
	case CPU:
		p.stop = profile.Start(profile.CPUProfile).Stop
	case Memory:
		p.stop = profile.Start(profile.MemProfile).Stop
	case Block:
		p.stop = profile.Start(profile.BlockProfile).Stop
	case Goroutine:
		p.stop = profile.Start(profile.GoroutineProfile).Stop
	case Mutex:
		p.stop = profile.Start(profile.MutexProfile).Stop
	case Trace:
		p.stop = profile.Start(profile.TraceProfile).Stop
	case Gio:
		recorder, err := profiling.NewRecorder(nil)
		if err != nil {
			log.Printf("starting profiler: %v", err)
			break
		}
		p.recorder = recorder
		p.stop = func() {
			if err := recorder.Stop(); err != nil {
				log.Printf("stopping profiler: %v", err)
			}
		}
	}
	return &p
}

// Record GUI stats for the frame. Only the Gio profile records anything.
func (p *Profiler) Record(gtx layout.Context) {
	if p.recorder != nil {
		p.recorder.Profile(gtx)
	}
}

// Stop profiling.
func (p *Profiler) Stop() {
	if p.stop != nil {
		p.stop()
	}
}
