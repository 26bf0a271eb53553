package app

import (
	"flag"
	"testing"
	"time"

	"sparse-life/pkg/life"
)

func TestDefaultIntervalMatchesScheduler(t *testing.T) {
	cfg := NewConfig()
	if cfg.Interval != life.DefaultInterval {
		t.Fatalf("default interval is %v, expected the scheduler default %v", cfg.Interval, life.DefaultInterval)
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-pattern", "pulsar", "-interval", "50ms", "-paused"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Pattern != "pulsar" {
		t.Fatalf("pattern is %q, expected %q", cfg.Pattern, "pulsar")
	}
	if cfg.Interval != 50*time.Millisecond {
		t.Fatalf("interval is %v, expected 50ms", cfg.Interval)
	}
	if !cfg.Paused {
		t.Fatalf("paused flag was not applied")
	}
}
