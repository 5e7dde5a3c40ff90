package utils

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_LevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		level    DiagnosticLevel
		contains []string
		excludes []string
	}{
		{"silent", DiagnosticSilent, nil, []string{"[ERROR]", "[WARN]", "[INFO]"}},
		{"errors only", DiagnosticError, []string{"[ERROR] broken"}, []string{"[WARN]", "[INFO]", "[VERBOSE]"}},
		{"info", DiagnosticInfo, []string{"[ERROR] broken", "[WARN] careful", "[INFO] hello", "[SUCCESS] done"}, []string{"[VERBOSE]", "[DEBUG]"}},
		{"verbose", DiagnosticVerbose, []string{"[VERBOSE] details"}, []string{"[DEBUG]"}},
		{"debug", DiagnosticDebug, []string{"[VERBOSE] details", "[DEBUG] internals"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			d := NewBufferedDiagnostics(tt.level, &out)
			d.Error("broken")
			d.Warn("careful")
			d.Info("hello")
			d.Success("done")
			d.Verbose("details")
			d.Debug("internals")

			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out.String(), unwanted)
			}
		})
	}
}

func TestDiagnostics_StructuredOutput(t *testing.T) {
	var out bytes.Buffer
	d := NewBufferedDiagnostics(DiagnosticVerbose, &out)

	d.Section("MORSE component documentation")
	d.Category("Sensors")
	d.List("Found sensor %s", "GPS")
	d.Indent()
	d.Writing("doc/sensors/gps.rst")
	d.Progress("%d pages written", 1)
	d.Unindent()
	d.Unindent()
	d.Summary("Generation Complete!", map[string]interface{}{"Sensors found": 1, "Actuators found": 0})

	assert.Equal(t, "MORSE component documentation\n"+
		"\n[Sensors]\n"+
		"- Found sensor GPS\n"+
		"  ✏ Writing doc/sensors/gps.rst\n"+
		"  ✓ 1 pages written\n"+
		"\nGeneration Complete!\n"+
		"   Actuators found: 0\n"+
		"   Sensors found: 1\n\n", out.String())
}

func TestDiagnostics_ConcurrentUse(t *testing.T) {
	var out bytes.Buffer
	d := NewBufferedDiagnostics(DiagnosticVerbose, &out)

	const workers, messages = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < messages; i++ {
				d.Indent()
				d.Verbose("worker %d message %d", w, i)
				d.List("item %d", i)
				d.Unindent()
			}
		}(w)
	}
	wg.Wait()
	d.List("done")

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, workers*messages*2+1)
	line := regexp.MustCompile(`^( {2})*(\[VERBOSE\] worker \d+ message \d+|- item \d+)$`)
	for _, l := range lines[:len(lines)-1] {
		assert.Regexp(t, line, l)
	}
	assert.Equal(t, "- done", lines[len(lines)-1])
}
