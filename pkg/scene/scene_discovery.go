package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Name accepted by LookupScene
	Name        string // Display name
	Description string // Optional description
	Type        string // "builtin" or "file"
	FilePath    string // Path to the scene file (file type only)
}

type builtinScene struct {
	info   SceneInfo
	create func() *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Two spheres over a floor and a right-hand wall",
			Type:        "builtin",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "single-sphere",
			Name:        "Single Sphere",
			Description: "One sphere against the background",
			Type:        "builtin",
		},
		create: NewSingleSphereScene,
	},
	{
		info: SceneInfo{
			ID:          "shadow",
			Name:        "Shadow",
			Description: "Sphere casting a hard shadow straight down onto a floor",
			Type:        "builtin",
		},
		create: NewShadowScene,
	},
}

// LookupScene creates a scene by built-in ID or by scene file path
func LookupScene(name string) (*Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name cannot be empty")
	}

	if strings.HasSuffix(strings.ToLower(name), ".scene") {
		return NewFileScene(name)
	}

	for _, b := range builtinScenes {
		if b.info.ID == name {
			return b.create(), nil
		}
	}

	// Fall back to a file of that name in the scenes directory
	if scenesDir := findScenesDir(); scenesDir != "" {
		path := filepath.Join(scenesDir, name+".scene")
		if _, err := os.Stat(path); err == nil {
			return NewFileScene(path)
		}
	}

	return nil, fmt.Errorf("unknown scene %q", name)
}

// ListSceneFiles scans the scenes directory and returns discovered scene files
func ListSceneFiles() ([]SceneInfo, error) {
	scenesDir := findScenesDir()
	if scenesDir == "" {
		// No scenes directory found, return empty list
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(scenesDir, "*.scene"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %v", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		sceneInfo, err := ParseSceneMetadata(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse metadata for %s: %v", filePath, err)
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ListAllScenes returns the built-in scenes followed by discovered scene files
func ListAllScenes() ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		scenes = append(scenes, b.info)
	}

	files, err := ListSceneFiles()
	if err != nil {
		return nil, err
	}
	return append(scenes, files...), nil
}

// ParseSceneMetadata extracts metadata from scene file header comments
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	// Fallback values come from the filename
	sceneInfo := SceneInfo{
		ID:       nameWithoutExt,
		Name:     titleCase(nameWithoutExt),
		Type:     "file",
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return sceneInfo, err
	}
	defer file.Close()

	// Read header comments until the first non-comment line
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if strings.HasPrefix(content, "Scene:") {
			sceneInfo.Name = strings.TrimSpace(strings.TrimPrefix(content, "Scene:"))
		} else if strings.HasPrefix(content, "Description:") {
			sceneInfo.Description = strings.TrimSpace(strings.TrimPrefix(content, "Description:"))
		}
	}

	return sceneInfo, scanner.Err()
}

func findScenesDir() string {
	for _, path := range []string{"scenes", "../scenes", "../../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
