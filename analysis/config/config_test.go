package config

import (
	"strings"
	"testing"

	"github.com/seml-dk/ibex/analysis/fixpoint"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.WidenAfter != fixpoint.DefaultWideningThreshold {
		t.Errorf("unexpected default threshold %d", cfg.WidenAfter)
	}
	if cfg.WorkingSet != WorkingSetFIFO {
		t.Errorf("unexpected default working set %q", cfg.WorkingSet)
	}
}

func TestLoadBytes(t *testing.T) {
	cfg, err := LoadBytes([]byte(`
widen-after: 2
working-set: priority
verbose: true
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WidenAfter != 2 || cfg.WorkingSet != WorkingSetPriority || !cfg.Verbose {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadBytesPartial(t *testing.T) {
	// Unset fields keep their defaults.
	cfg, err := LoadBytes([]byte(`working-set: lifo`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WidenAfter != fixpoint.DefaultWideningThreshold {
		t.Errorf("expected the default threshold, got %d", cfg.WidenAfter)
	}
	if cfg.WorkingSet != WorkingSetLIFO {
		t.Errorf("expected lifo, got %q", cfg.WorkingSet)
	}
}

func TestLoadBytesInvalid(t *testing.T) {
	tests := []struct {
		yaml, want string
	}{
		{`widen-after: -1`, "widen-after"},
		{`working-set: roundrobin`, "working-set"},
		{`widen-after: [`, ""},
	}

	for _, test := range tests {
		_, err := LoadBytes([]byte(test.yaml))
		if err == nil {
			t.Errorf("expected %q to be rejected", test.yaml)
		} else if test.want != "" && !strings.Contains(err.Error(), test.want) {
			t.Errorf("expected the error to mention %s, got %v", test.want, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load("testdata/config.yml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WidenAfter != 3 || cfg.WorkingSet != WorkingSetPriority {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Visualize != "out/graphs" {
		t.Errorf("unexpected visualize target %q", cfg.Visualize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/nope.yml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
