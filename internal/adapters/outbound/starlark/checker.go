package starlark

import (
	"fmt"

	"go.starlark.net/starlark"

	"github.com/Figglewatts/sanity/internal/domain"
)

// unitChecker adapts a loaded Starlark check function to the domain checker
// contract. Errors raised inside the script surface as invocation faults.
type unitChecker struct {
	unit string
	fn   *starlark.Function
}

func (c *unitChecker) Check(path string, params domain.Params) (bool, string, error) {
	dict, err := paramsToStarlark(params)
	if err != nil {
		return false, "", fmt.Errorf("converting params: %w", err)
	}

	thread := &starlark.Thread{Name: "check:" + c.unit}
	value, err := starlark.Call(thread, c.fn, starlark.Tuple{starlark.String(path), dict}, nil)
	if err != nil {
		return false, "", err
	}

	tuple, ok := value.(starlark.Tuple)
	if !ok || tuple.Len() != 2 {
		return false, "", fmt.Errorf("check returned %s, want a (bool, string) tuple", value.Type())
	}

	verdict, ok := tuple.Index(0).(starlark.Bool)
	if !ok {
		return false, "", fmt.Errorf("check verdict was %s, want bool", tuple.Index(0).Type())
	}
	reason, ok := starlark.AsString(tuple.Index(1))
	if !ok {
		return false, "", fmt.Errorf("check reason was %s, want string", tuple.Index(1).Type())
	}

	return bool(verdict), reason, nil
}
