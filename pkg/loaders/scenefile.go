package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
)

// Statement represents a parsed scene file statement
type Statement struct {
	Type       string           // Statement type (Film, Camera, Shape, etc.)
	Subtype    string           // Subtype (sphere, plane, distant, etc.)
	Parameters map[string]Param // Named parameters
	Line       int              // Line the statement starts on
}

// Param represents a parameter with type and value(s)
type Param struct {
	Type   string   // Parameter type (float, integer, rgb, point3, vector3)
	Values []string // Parameter values as strings
}

// SceneFile contains all parsed scene file data
type SceneFile struct {
	Film       *Statement
	Camera     *Statement
	Background *Statement
	Light      *Statement
	Shapes     []Statement // In file order
}

// sceneFileParser holds the state for parsing scene files
type sceneFileParser struct {
	scene          *SceneFile
	statementLines []string
	statementStart int
	lineNumber     int
}

// statementTypes lists the directives that start a new statement
var statementTypes = []string{"Film", "Camera", "Background", "LightSource", "Shape"}

// ParseSceneFile parses scene file content from an io.Reader
func ParseSceneFile(reader io.Reader) (*SceneFile, error) {
	parser := &sceneFileParser{
		scene: &SceneFile{Shapes: make([]Statement, 0)},
	}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		parser.lineNumber++
		if err := parser.processLine(scanner.Text()); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %v", err)
	}

	// Process any remaining accumulated statement
	if err := parser.processAccumulatedStatement(); err != nil {
		return nil, err
	}

	return parser.scene, nil
}

// LoadSceneFile loads and parses a scene file
func LoadSceneFile(filename string) (*SceneFile, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %v", err)
	}
	defer file.Close()

	return ParseSceneFile(file)
}

// processLine processes a single line of input
func (p *sceneFileParser) processLine(line string) error {
	line = strings.TrimSpace(line)

	// Skip empty lines and comments
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	if isStatementStart(line) {
		if err := p.processAccumulatedStatement(); err != nil {
			return err
		}
		p.statementLines = []string{line}
		p.statementStart = p.lineNumber
		return nil
	}

	// Continuation of the previous statement
	if len(p.statementLines) == 0 {
		return fmt.Errorf("line %d: unexpected continuation line: %s", p.lineNumber, line)
	}
	p.statementLines = append(p.statementLines, line)
	return nil
}

// processAccumulatedStatement parses and routes the accumulated statement lines
func (p *sceneFileParser) processAccumulatedStatement() error {
	if len(p.statementLines) == 0 {
		return nil
	}

	fullStatement := strings.Join(p.statementLines, " ")
	p.statementLines = nil

	stmt, err := parseStatement(fullStatement)
	if err != nil {
		return fmt.Errorf("line %d: error parsing statement '%s': %v", p.statementStart, fullStatement, err)
	}
	stmt.Line = p.statementStart

	return p.routeStatement(stmt)
}

// routeStatement stores a parsed statement in the scene
func (p *sceneFileParser) routeStatement(stmt *Statement) error {
	var slot **Statement

	switch stmt.Type {
	case "Film":
		slot = &p.scene.Film
	case "Camera":
		slot = &p.scene.Camera
	case "Background":
		slot = &p.scene.Background
	case "LightSource":
		slot = &p.scene.Light
	case "Shape":
		p.scene.Shapes = append(p.scene.Shapes, *stmt)
		return nil
	default:
		return fmt.Errorf("line %d: unknown statement type %q", stmt.Line, stmt.Type)
	}

	if *slot != nil {
		return fmt.Errorf("line %d: duplicate %s statement (first on line %d)", stmt.Line, stmt.Type, (*slot).Line)
	}
	*slot = stmt
	return nil
}

// validateFilePath validates a scene file path
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)

	// Only allow files in a scenes/ directory or the temp directory (for tests)
	if !strings.HasPrefix(cleanPath, "scenes"+string(filepath.Separator)) &&
		!strings.Contains(cleanPath, string(filepath.Separator)+"scenes"+string(filepath.Separator)) &&
		!strings.HasPrefix(cleanPath, os.TempDir()) {
		return fmt.Errorf("file path must be in scenes/ directory")
	}

	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	if !strings.HasSuffix(strings.ToLower(cleanPath), ".scene") {
		return fmt.Errorf("invalid file type: only .scene files are allowed")
	}

	return nil
}

// isStatementStart determines if a line starts a new statement
func isStatementStart(line string) bool {
	for _, stmt := range statementTypes {
		if strings.HasPrefix(line, stmt+" ") || line == stmt {
			return true
		}
	}
	return false
}

// tokenize splits a statement respecting quoted strings and brackets
func tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false
	inBrackets := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, char := range line {
		switch {
		case char == '"' && !inBrackets:
			if inQuotes {
				current.WriteRune(char)
				flush()
				inQuotes = false
			} else {
				flush()
				current.WriteRune(char)
				inQuotes = true
			}
		case char == '[' && !inQuotes:
			flush()
			current.WriteRune(char)
			inBrackets = true
		case char == ']' && !inQuotes && inBrackets:
			current.WriteRune(char)
			flush()
			inBrackets = false
		case (char == ' ' || char == '\t') && !inQuotes && !inBrackets:
			flush()
		default:
			current.WriteRune(char)
		}
	}
	flush()

	return tokens
}

// parseStatement parses a single statement: Type ["subtype"] ("type name" value)*
func parseStatement(line string) (*Statement, error) {
	parts := tokenize(line)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty statement")
	}

	stmt := &Statement{
		Type:       parts[0],
		Parameters: make(map[string]Param),
	}
	parts = parts[1:]

	// Optional quoted subtype, distinguished from a parameter by having a single word
	if len(parts) > 0 && isQuoted(parts[0]) && len(strings.Fields(unquote(parts[0]))) == 1 {
		stmt.Subtype = unquote(parts[0])
		parts = parts[1:]
	}

	for i := 0; i < len(parts); {
		if !isQuoted(parts[i]) {
			return nil, fmt.Errorf("expected quoted parameter declaration, got %s", parts[i])
		}

		paramParts := strings.Fields(unquote(parts[i]))
		if len(paramParts) != 2 {
			return nil, fmt.Errorf("parameter declaration %s must be \"type name\"", parts[i])
		}
		paramType, paramName := paramParts[0], paramParts[1]
		i++

		if i >= len(parts) {
			return nil, fmt.Errorf("parameter %s has no value", paramName)
		}

		var values []string
		if strings.HasPrefix(parts[i], "[") && strings.HasSuffix(parts[i], "]") {
			values = strings.Fields(strings.Trim(parts[i], "[]"))
		} else {
			values = []string{parts[i]}
		}
		i++

		if _, exists := stmt.Parameters[paramName]; exists {
			return nil, fmt.Errorf("duplicate parameter %s", paramName)
		}
		stmt.Parameters[paramName] = Param{Type: paramType, Values: values}
	}

	return stmt, nil
}

func isQuoted(token string) bool {
	return len(token) >= 2 && strings.HasPrefix(token, "\"") && strings.HasSuffix(token, "\"")
}

func unquote(token string) string {
	return strings.Trim(token, "\"")
}

// GetFloatParam extracts a float parameter
func (stmt *Statement) GetFloatParam(name string) (float64, bool, error) {
	param, exists := stmt.Parameters[name]
	if !exists {
		return 0, false, nil
	}
	values, err := param.floats(name, 1)
	if err != nil {
		return 0, true, err
	}
	return values[0], true, nil
}

// GetIntParam extracts an integer parameter
func (stmt *Statement) GetIntParam(name string) (int, bool, error) {
	param, exists := stmt.Parameters[name]
	if !exists {
		return 0, false, nil
	}
	if len(param.Values) != 1 {
		return 0, true, fmt.Errorf("parameter %s: expected 1 value, got %d", name, len(param.Values))
	}
	val, err := strconv.Atoi(param.Values[0])
	if err != nil {
		return 0, true, fmt.Errorf("parameter %s: invalid integer '%s': %v", name, param.Values[0], err)
	}
	return val, true, nil
}

// GetRGBParam extracts an RGB color parameter
func (stmt *Statement) GetRGBParam(name string) (core.Color, bool, error) {
	param, exists := stmt.Parameters[name]
	if !exists {
		return core.Color{}, false, nil
	}
	values, err := param.floats(name, 3)
	if err != nil {
		return core.Color{}, true, err
	}
	return core.NewColor(values[0], values[1], values[2]), true, nil
}

// GetVec3Param extracts a point3 or vector3 parameter
func (stmt *Statement) GetVec3Param(name string) (core.Vec3, bool, error) {
	param, exists := stmt.Parameters[name]
	if !exists {
		return core.Vec3{}, false, nil
	}
	values, err := param.floats(name, 3)
	if err != nil {
		return core.Vec3{}, true, err
	}
	return core.NewVec3(values[0], values[1], values[2]), true, nil
}

func (p Param) floats(name string, count int) ([]float64, error) {
	if len(p.Values) != count {
		return nil, fmt.Errorf("parameter %s: expected %d values, got %d", name, count, len(p.Values))
	}
	values := make([]float64, count)
	for i, s := range p.Values {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: invalid number '%s': %v", name, s, err)
		}
		values[i] = v
	}
	return values, nil
}
