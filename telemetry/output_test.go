package telemetry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/washer/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}
	// Nil receivers are no-ops.
	if err := om.WriteTrace([]TickSample{{Tick: 1}}); err != nil {
		t.Errorf("WriteTrace on nil: %v", err)
	}
	if err := om.WriteTransition(Transition{}); err != nil {
		t.Errorf("WriteTransition on nil: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}

func TestOutputManagerTraceRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	first := []TickSample{
		{Tick: 0, X: 0, Y: -91, Map: 1},
		{Tick: 1, X: 0, Y: -87, VelY: 4, Airborne: true, Map: 1, Jumped: true},
	}
	second := []TickSample{
		{Tick: 2, X: 1.5, Y: -83.1, VelY: 3.9, Airborne: true, Map: 1, CircleContacts: 2},
	}
	if err := om.WriteTrace(first); err != nil {
		t.Fatalf("WriteTrace: %v", err)
	}
	if err := om.WriteTrace(second); err != nil {
		t.Fatalf("WriteTrace: %v", err)
	}
	if err := om.WriteTransition(Transition{Tick: 2, From: 1, To: 2}); err != nil {
		t.Fatalf("WriteTransition: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "trace.csv"))
	if err != nil {
		t.Fatalf("open trace.csv: %v", err)
	}
	defer f.Close()

	var got []TickSample
	if err := gocsv.UnmarshalFile(f, &got); err != nil {
		t.Fatalf("unmarshal trace.csv: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d rows, want 3 (header written once)", len(got))
	}
	if !got[1].Jumped || got[1].VelY != 4 {
		t.Errorf("row 1 = %+v", got[1])
	}
	if got[2].CircleContacts != 2 {
		t.Errorf("row 2 circle contacts = %d, want 2", got[2].CircleContacts)
	}

	tf, err := os.Open(filepath.Join(dir, "transitions.csv"))
	if err != nil {
		t.Fatalf("open transitions.csv: %v", err)
	}
	defer tf.Close()

	var trs []Transition
	if err := gocsv.UnmarshalFile(tf, &trs); err != nil {
		t.Fatalf("unmarshal transitions.csv: %v", err)
	}
	if len(trs) != 1 || trs[0].To != 2 {
		t.Errorf("transitions = %+v", trs)
	}
}

func TestOutputManagerWriteConfig(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	defer om.Close()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml not written: %v", err)
	}
}
