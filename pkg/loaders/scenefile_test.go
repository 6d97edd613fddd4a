package loaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

const testSceneContent = `# Scene: Test
# Description: one sphere over a floor
Film "image" "integer xresolution" 800 "integer yresolution" 600
Camera "perspective" "float fov" 90
Background "rgb color" [0.13 0.18 0.216]
LightSource "distant" "vector3 direction" [4 -9 0]
    "rgb color" [1 1 1] "float intensity" 7

Shape "sphere" "point3 center" [0 2 -7] "float radius" 3
    "rgb color" [0.07 0.313 0.35] "float albedo" 0.4
Shape "plane" "point3 origin" [0 -8 0] "vector3 normal" [0 -7 0]
    "rgb color" [0.8 0.84 0.86] "float albedo" 0.05
`

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple statement",
			input:    `Camera "perspective"`,
			expected: []string{`Camera`, `"perspective"`},
		},
		{
			name:     "statement with parameters",
			input:    `Camera "perspective" "float fov" 90`,
			expected: []string{`Camera`, `"perspective"`, `"float fov"`, `90`},
		},
		{
			name:     "statement with arrays",
			input:    `Shape "plane" "point3 origin" [0 -8 0] "vector3 normal" [0 -7 0]`,
			expected: []string{`Shape`, `"plane"`, `"point3 origin"`, `[0 -8 0]`, `"vector3 normal"`, `[0 -7 0]`},
		},
		{
			name:     "tabs and extra spaces",
			input:    "Background\t\"rgb color\"   [ 0.1  0.2 0.3 ]",
			expected: []string{`Background`, `"rgb color"`, `[ 0.1  0.2 0.3 ]`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tokenize(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("tokenize() = %q, want %q", result, tt.expected)
			}
			for i, token := range result {
				if token != tt.expected[i] {
					t.Errorf("tokenize()[%d] = %q, want %q", i, token, tt.expected[i])
				}
			}
		})
	}
}

func TestParseStatement(t *testing.T) {
	stmt, err := parseStatement(`Shape "sphere" "point3 center" [0 2 -7] "float radius" 3`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stmt.Type != "Shape" || stmt.Subtype != "sphere" {
		t.Errorf("Expected Shape/sphere, got %s/%s", stmt.Type, stmt.Subtype)
	}

	center, ok, err := stmt.GetVec3Param("center")
	if !ok || err != nil || center != core.NewVec3(0, 2, -7) {
		t.Errorf("Expected center (0,2,-7), got %v (ok=%t, err=%v)", center, ok, err)
	}
	radius, ok, err := stmt.GetFloatParam("radius")
	if !ok || err != nil || radius != 3 {
		t.Errorf("Expected radius 3, got %f (ok=%t, err=%v)", radius, ok, err)
	}
	if _, ok, _ := stmt.GetFloatParam("albedo"); ok {
		t.Error("Expected albedo to be absent")
	}
}

func TestParseStatement_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing value", `Shape "sphere" "float radius"`},
		{"bare value", `Shape "sphere" 3`},
		{"bad declaration", `Shape "sphere" "float radius extra" 3`},
		{"duplicate parameter", `Shape "sphere" "float radius" 3 "float radius" 4`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseStatement(tt.input); err == nil {
				t.Errorf("Expected error for %q", tt.input)
			}
		})
	}
}

func TestStatement_ParamErrors(t *testing.T) {
	stmt, err := parseStatement(`Shape "sphere" "point3 center" [0 2] "float radius" abc "integer n" 1.5`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, ok, err := stmt.GetVec3Param("center"); !ok || err == nil {
		t.Error("Expected error for two-component point")
	}
	if _, ok, err := stmt.GetFloatParam("radius"); !ok || err == nil {
		t.Error("Expected error for non-numeric float")
	}
	if _, ok, err := stmt.GetIntParam("n"); !ok || err == nil {
		t.Error("Expected error for non-integer value")
	}
}

func TestParseSceneFile(t *testing.T) {
	scene, err := ParseSceneFile(strings.NewReader(testSceneContent))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if scene.Film == nil || scene.Camera == nil || scene.Background == nil || scene.Light == nil {
		t.Fatalf("Expected all singleton statements, got %+v", scene)
	}

	width, _, _ := scene.Film.GetIntParam("xresolution")
	height, _, _ := scene.Film.GetIntParam("yresolution")
	if width != 800 || height != 600 {
		t.Errorf("Expected 800x600, got %dx%d", width, height)
	}

	intensity, ok, err := scene.Light.GetFloatParam("intensity")
	if !ok || err != nil || intensity != 7 {
		t.Errorf("Expected continuation line to carry intensity 7, got %f (ok=%t, err=%v)", intensity, ok, err)
	}

	if len(scene.Shapes) != 2 {
		t.Fatalf("Expected 2 shapes, got %d", len(scene.Shapes))
	}
	if scene.Shapes[0].Subtype != "sphere" || scene.Shapes[1].Subtype != "plane" {
		t.Errorf("Expected shapes in file order, got %s, %s", scene.Shapes[0].Subtype, scene.Shapes[1].Subtype)
	}
	if scene.Shapes[1].Line != 11 {
		t.Errorf("Expected plane on line 11, got %d", scene.Shapes[1].Line)
	}
}

func TestParseSceneFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"continuation without statement", `"float fov" 90`},
		{"duplicate light", "LightSource \"distant\"\nLightSource \"distant\""},
		{"duplicate film", "Film \"image\"\nFilm \"image\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSceneFile(strings.NewReader(tt.content)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadSceneFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scenes")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "test.scene")
	if err := os.WriteFile(path, []byte(testSceneContent), 0644); err != nil {
		t.Fatal(err)
	}

	scene, err := LoadSceneFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(scene.Shapes) != 2 {
		t.Errorf("Expected 2 shapes, got %d", len(scene.Shapes))
	}

	if _, err := LoadSceneFile(filepath.Join(dir, "missing.scene")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestValidateFilePath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expectError bool
	}{
		{"scenes dir", "scenes/default.scene", false},
		{"nested scenes dir", "../project/scenes/default.scene", false},
		{"empty", "", true},
		{"outside scenes", "/etc/passwd.scene", true},
		{"wrong extension", "scenes/default.pbrt", true},
		{"null byte", "scenes/a\x00.scene", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFilePath(tt.path)
			if tt.expectError && err == nil {
				t.Errorf("Expected error for %q", tt.path)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error for %q: %v", tt.path, err)
			}
		})
	}
}
