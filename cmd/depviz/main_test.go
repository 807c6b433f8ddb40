package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr string
	}{
		{"no arguments", nil, 1, "accepts 1 arg(s)"},
		{"too many arguments", []string{"a.json", "b.json"}, 1, "accepts 1 arg(s)"},
		{"missing config", []string{filepath.Join(dir, "missing.json")}, 1, "config file"},
		{"version", []string{"--version"}, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if got := run(context.Background(), tt.args, &stderr); got != tt.want {
				t.Errorf("run() = %d, want %d (stderr: %s)", got, tt.want, stderr.String())
			}
			if tt.wantErr != "" && !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantErr)
			}
		})
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("failed runs should not write files, found %d", len(entries))
	}
}

func TestRunCanceled(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.json")
	data := `{"package_name": "PackageA", "output_path": "` + filepath.ToSlash(filepath.Join(dir, "out.dot")) + `", "repository_url": "http://127.0.0.1:1"}`
	if err := os.WriteFile(cfg, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stderr bytes.Buffer
	if got := run(ctx, []string{cfg}, &stderr); got != 130 {
		t.Errorf("run() = %d, want 130 (stderr: %s)", got, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "out.dot")); !os.IsNotExist(err) {
		t.Error("canceled run should not write the output file")
	}
}
