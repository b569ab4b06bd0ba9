package starlark

import (
	"fmt"

	"go.starlark.net/starlark"

	"github.com/Figglewatts/sanity/internal/domain"
)

// paramsToStarlark converts a resolved parameter mapping to the dict passed
// as the check function's second argument.
func paramsToStarlark(params domain.Params) (*starlark.Dict, error) {
	dict := starlark.NewDict(len(params))
	for key, value := range params {
		sv, err := goToStarlark(value)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", key, err)
		}
		if err := dict.SetKey(starlark.String(key), sv); err != nil {
			return nil, fmt.Errorf("param %q: %w", key, err)
		}
	}
	return dict, nil
}

// goToStarlark converts a Go value decoded from the config file to a
// Starlark value. Covers the scalar and structured types YAML produces.
func goToStarlark(v any) (starlark.Value, error) {
	switch val := v.(type) {
	case nil:
		return starlark.None, nil
	case string:
		return starlark.String(val), nil
	case bool:
		return starlark.Bool(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case int64:
		return starlark.MakeInt64(val), nil
	case float64:
		return starlark.Float(val), nil
	case []string:
		list := make([]starlark.Value, len(val))
		for i, s := range val {
			list[i] = starlark.String(s)
		}
		return starlark.NewList(list), nil
	case []any:
		list := make([]starlark.Value, len(val))
		for i, item := range val {
			sv, err := goToStarlark(item)
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			list[i] = sv
		}
		return starlark.NewList(list), nil
	case map[string]any:
		dict := starlark.NewDict(len(val))
		for k, item := range val {
			sv, err := goToStarlark(item)
			if err != nil {
				return nil, fmt.Errorf("dict key %q: %w", k, err)
			}
			if err := dict.SetKey(starlark.String(k), sv); err != nil {
				return nil, fmt.Errorf("dict key %q: %w", k, err)
			}
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}
