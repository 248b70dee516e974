// Package starlarkmjson exposes the mjson decoder to Starlark scripts.
package starlarkmjson

import (
	"fmt"

	"github.com/togatoga/mjson"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// Module is the `mjson` Starlark module. Its single member, parse,
// decodes a JSON string into native Starlark values.
var Module = starlarkstruct.Module{
	Name: "mjson",
	Members: starlark.StringDict{
		"parse": starlark.NewBuiltin("parse", parse),
	},
}

func parse(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, fmt.Errorf("%s() does not accept keyword arguments", fn.Name())
	}
	var input string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &input); err != nil {
		return nil, err
	}
	value, err := mjson.Parse(input)
	if err != nil {
		return nil, newValueError(err)
	}
	return Value(value)
}

// Value converts a decoded tree to the equivalent Starlark value.
// Objects become dicts filled in lexicographic key order, so a
// script observes the same iteration order as a Go caller.
func Value(v mjson.Value) (starlark.Value, error) {
	switch v := v.(type) {
	case mjson.Null:
		return starlark.None, nil
	case mjson.Bool:
		return starlark.Bool(v), nil
	case mjson.Number:
		return starlark.Float(v), nil
	case mjson.String:
		return starlark.String(v), nil
	case mjson.Array:
		elems := make([]starlark.Value, 0, len(v))
		for _, el := range v {
			sv, err := Value(el)
			if err != nil {
				return nil, err
			}
			elems = append(elems, sv)
		}
		return starlark.NewList(elems), nil
	case mjson.Object:
		dict := starlark.NewDict(v.Len())
		var err error
		v.Range(func(key string, el mjson.Value) bool {
			var sv starlark.Value
			if sv, err = Value(el); err != nil {
				return false
			}
			err = dict.SetKey(starlark.String(key), sv)
			return err == nil
		})
		if err != nil {
			return nil, err
		}
		return dict, nil
	default:
		return nil, TypeError(fmt.Sprintf("cannot convert a %s value to Starlark", v.Type()))
	}
}
