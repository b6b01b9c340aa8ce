package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Placeholders available to algorithm arguments.
const (
	ParamTSPath   = "ts_path"
	ParamLength   = "length"
	ParamWS       = "ws"
	ParamRadius   = "radius"
	ParamRadiusX2 = "radius_x2"
	ParamRadiusSq = "radius_sq"
)

type Params map[string]any

var placeholderRegex = regexp.MustCompile(`\{\{(\w+)\}\}`)

// CaseParams builds the argument parameters of one benchmark case.
func CaseParams(tsPath string, length, ws int, radius float64) Params {
	return Params{
		ParamTSPath:   tsPath,
		ParamLength:   length,
		ParamWS:       ws,
		ParamRadius:   radius,
		ParamRadiusX2: 2 * radius,
		ParamRadiusSq: radius * radius,
	}
}

// RenderArgs substitutes {{name}} placeholders in every argument. Unknown
// placeholders are an error.
func RenderArgs(args []string, params Params) ([]string, error) {
	out := make([]string, len(args))
	for i, arg := range args {
		rendered, err := Render(arg, params)
		if err != nil {
			return nil, err
		}
		out[i] = rendered
	}
	return out, nil
}

func Render(s string, params Params) (string, error) {
	result := placeholderRegex.ReplaceAllStringFunc(s, func(match string) string {
		key := match[2 : len(match)-2]
		if val, ok := params[key]; ok {
			return formatValue(val)
		}
		return match
	})

	if missing := findMissingPlaceholders(result); len(missing) > 0 {
		return "", fmt.Errorf("argument %q missing params: %v", s, missing)
	}
	return result, nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, " ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func findMissingPlaceholders(s string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var missing []string
	for _, m := range matches {
		if len(m) > 1 && !seen[m[1]] {
			seen[m[1]] = true
			missing = append(missing, m[1])
		}
	}
	return missing
}
