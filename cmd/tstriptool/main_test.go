package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-strip/internal/config"
	"github.com/Faultbox/midgard-strip/pkg/formats"
)

const twoFaces = `
vertices: [[0, 0, 0], [1, 0, 0], [0, 1, 0], [1, 1, 0]]
faces: [[0, 1, 2], [1, 3, 2]]
`

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("tstriptool %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestBuildInfoConvertUnpack(t *testing.T) {
	dir := t.TempDir()
	meshPath := filepath.Join(dir, "mesh.yaml")
	tsfPath := filepath.Join(dir, "mesh.tsf")
	if err := os.WriteFile(meshPath, []byte(twoFaces), 0644); err != nil {
		t.Fatalf("failed to write mesh: %v", err)
	}

	if got := run(t, "build", meshPath); strings.TrimSpace(got) != "3 2 1 0 -1" {
		t.Errorf("build output = %q, want %q", got, "3 2 1 0 -1")
	}

	run(t, "build", meshPath, "-o", tsfPath)

	info := run(t, "info", tsfPath)
	for _, want := range []string{"Strips:    1", "Triangles: 2"} {
		if !strings.Contains(info, want) {
			t.Errorf("info output missing %q:\n%s", want, info)
		}
	}

	if got := run(t, "convert", tsfPath, "--to", "length"); strings.TrimSpace(got) != "4 3 2 1 0" {
		t.Errorf("convert output = %q, want %q", got, "4 3 2 1 0")
	}

	unpacked := run(t, "unpack", tsfPath)
	if want := "3 2 1\n1 2 0\n"; unpacked != want {
		t.Errorf("unpack output = %q, want %q", unpacked, want)
	}
}

func TestTransform(t *testing.T) {
	dir := t.TempDir()
	meshPath := filepath.Join(dir, "mesh.yaml")
	outPath := filepath.Join(dir, "moved.yaml")
	if err := os.WriteFile(meshPath, []byte(twoFaces), 0644); err != nil {
		t.Fatalf("failed to write mesh: %v", err)
	}

	run(t, "transform", meshPath, "--scale", "2", "--rotate-y", "90", "--translate", "1,0,0", "-o", outPath)

	doc, err := formats.LoadMeshDoc(outPath)
	if err != nil {
		t.Fatalf("LoadMeshDoc: %v", err)
	}
	want := []mgl32.Vec3{{1, 0, 0}, {1, 0, -2}, {1, 2, 0}, {1, 2, -2}}
	if len(doc.Vertices) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(doc.Vertices), len(want))
	}
	for i, v := range doc.Vertices {
		if !mgl32.Vec3(v).ApproxEqualThreshold(want[i], 1e-5) {
			t.Errorf("vertex %d = %v, want %v", i, v, want[i])
		}
	}
	if len(doc.Faces) != 2 {
		t.Errorf("got %d faces, want 2", len(doc.Faces))
	}
}

func TestConfigWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tstrip.yaml")

	if got := run(t, "config", path); strings.TrimSpace(got) != path {
		t.Errorf("config output = %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	var saved config.Config
	if err := yaml.Unmarshal(data, &saved); err != nil {
		t.Fatalf("config file is not valid YAML: %v", err)
	}
	if saved.Strip.Representation != "term" || saved.Transform.Workers != 4 {
		t.Errorf("saved config = %+v, want defaults", saved)
	}
}

func TestParseVec3(t *testing.T) {
	v, err := parseVec3("1, 2.5,-3")
	if err != nil {
		t.Fatalf("parseVec3 error: %v", err)
	}
	if v != (mgl32.Vec3{1, 2.5, -3}) {
		t.Errorf("parseVec3 = %v", v)
	}
	if _, err := parseVec3("1,2"); err == nil {
		t.Error("expected error for two components")
	}
	if _, err := parseVec3("1,x,2"); err == nil {
		t.Error("expected error for non-numeric component")
	}
}
