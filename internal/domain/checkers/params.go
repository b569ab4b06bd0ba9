package checkers

import "github.com/Figglewatts/sanity/internal/domain"

// YAML decodes numbers as int, JSON as float64, and Starlark round-trips
// produce int64, so every numeric parameter goes through intParam.
func intParam(params domain.Params, key string, def int64) int64 {
	switch v := params[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return def
}

func stringParam(params domain.Params, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func stringSliceParam(params domain.Params, key string) []string {
	switch v := params[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
