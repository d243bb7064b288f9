package commands

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// profiler writes the profiles requested by [RootArgs].
type profiler struct {
	args    *RootArgs
	cpuFile *os.File
	allocs  *pprof.Profile
}

func startProfiler(args *RootArgs) (*profiler, error) {
	p := &profiler{args: args}

	if args.GetCPUProfile() != "" {
		f, err := os.Create(args.GetCPUProfile())
		if err != nil {
			return nil, fmt.Errorf("failed to create CPU profile: %w", err)
		}

		err = pprof.StartCPUProfile(f)
		if err != nil {
			must(f.Close())

			return nil, fmt.Errorf("failed to start CPU profile: %w", err)
		}

		p.cpuFile = f
	}

	if args.GetMemProfile() != "" {
		runtime.MemProfileRate = args.GetMemProfileRate()
		p.allocs = pprof.Lookup("allocs")
	}

	return p, nil
}

func (p *profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		if err != nil {
			return fmt.Errorf("failed to close CPU profile: %w", err)
		}
	}

	if p.allocs != nil {
		f, err := os.Create(p.args.GetMemProfile())
		if err != nil {
			return fmt.Errorf("failed to create memory profile: %w", err)
		}

		runtime.GC() //nolint:revive // Get up-to-date statistics for the profile.

		err = p.allocs.WriteTo(f, 0)
		if err != nil {
			must(f.Close())

			return fmt.Errorf("failed to write memory profile: %w", err)
		}

		must(f.Close())
	}

	return nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
