// Where: internal/infra/build/phase_reporter.go
// What: Build phase progress reporting helpers.
// Why: Keep user-facing phase output separate from build orchestration logic.
package build

import (
	"fmt"
	"io"
	"time"
)

type phaseReporter struct {
	out     io.Writer
	verbose bool
	emoji   bool
	now     func() time.Time
}

func newPhaseReporter(out io.Writer, verbose, emoji bool) phaseReporter {
	return phaseReporter{out: out, verbose: verbose, emoji: emoji, now: time.Now}
}

func (p phaseReporter) Run(label string, fn func() error) error {
	if p.out == nil {
		return fn()
	}
	if p.verbose {
		fmt.Fprintf(p.out, "%s...\n", label)
	}
	start := p.now()
	err := fn()
	duration := p.now().Sub(start)
	ok := err == nil
	status := "ok"
	if !ok {
		status = "failed"
	}
	fmt.Fprintf(p.out, "%s%s ... %s (%s)\n", p.prefix(ok), label, status, formatDuration(duration))
	return err
}

func (p phaseReporter) prefix(ok bool) string {
	if p.emoji {
		if ok {
			return "✅ "
		}
		return "❌ "
	}
	if ok {
		return "[ok] "
	}
	return "[fail] "
}

func formatDuration(duration time.Duration) string {
	if duration < time.Minute {
		return fmt.Sprintf("%.1fs", duration.Seconds())
	}
	total := int(duration.Seconds())
	mins := total / 60
	secs := total % 60
	return fmt.Sprintf("%dm%02ds", mins, secs)
}
