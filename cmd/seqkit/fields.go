package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

var (
	// ErrMissingField indicates a required payload field is absent.
	ErrMissingField = errors.New("seqkit: missing field")

	// ErrFieldType indicates a payload field of the wrong JSON type.
	ErrFieldType = errors.New("seqkit: wrong field type")
)

// field returns in[key], failing if it is absent.
func field(in gjson.Result, key string) (gjson.Result, error) {
	v := in.Get(key)
	if !v.Exists() {
		return v, fmt.Errorf("%w %q", ErrMissingField, key)
	}

	return v, nil
}

// asInt accepts JSON integers, including integral forms such as 2.0 or 1e3,
// that fit in an int64. Larger magnitudes are rejected rather than
// truncated.
func asInt(v gjson.Result, what string) (int, error) {
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%w: %s must be an integer, got %s", ErrFieldType, what, v.Raw)
	}
	if n, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
		return int(n), nil
	}
	if v.Num != math.Trunc(v.Num) || v.Num >= math.MaxInt64 || v.Num < math.MinInt64 {
		return 0, fmt.Errorf("%w: %s must be an integer in int64 range, got %s", ErrFieldType, what, v.Raw)
	}

	return int(v.Num), nil
}

func intField(in gjson.Result, key string) (int, error) {
	v, err := field(in, key)
	if err != nil {
		return 0, err
	}

	return asInt(v, key)
}

func stringField(in gjson.Result, key string) (string, error) {
	v, err := field(in, key)
	if err != nil {
		return "", err
	}
	if v.Type != gjson.String {
		return "", fmt.Errorf("%w: %s must be a string, got %s", ErrFieldType, key, v.Raw)
	}

	return v.String(), nil
}

func array(in gjson.Result, key string) ([]gjson.Result, error) {
	v, err := field(in, key)
	if err != nil {
		return nil, err
	}
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: %s must be an array, got %s", ErrFieldType, key, v.Raw)
	}

	return v.Array(), nil
}

func intsField(in gjson.Result, key string) ([]int, error) {
	items, err := array(in, key)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(items))
	for i, it := range items {
		if out[i], err = asInt(it, fmt.Sprintf("%s[%d]", key, i)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func floatsField(in gjson.Result, key string) ([]float64, error) {
	items, err := array(in, key)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(items))
	for i, it := range items {
		if it.Type != gjson.Number {
			return nil, fmt.Errorf("%w: %s[%d] must be a number, got %s", ErrFieldType, key, i, it.Raw)
		}
		out[i] = it.Float()
	}

	return out, nil
}

func stringsField(in gjson.Result, key string) ([]string, error) {
	items, err := array(in, key)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(items))
	for i, it := range items {
		if it.Type != gjson.String {
			return nil, fmt.Errorf("%w: %s[%d] must be a string, got %s", ErrFieldType, key, i, it.Raw)
		}
		out[i] = it.String()
	}

	return out, nil
}

// pairsField reads [[a, b], ...] of strings.
func pairsField(in gjson.Result, key string) ([][2]string, error) {
	items, err := array(in, key)
	if err != nil {
		return nil, err
	}
	out := make([][2]string, len(items))
	for i, it := range items {
		pair := it.Array()
		if !it.IsArray() || len(pair) != 2 || pair[0].Type != gjson.String || pair[1].Type != gjson.String {
			return nil, fmt.Errorf("%w: %s[%d] must be a pair of strings, got %s", ErrFieldType, key, i, it.Raw)
		}
		out[i] = [2]string{pair[0].String(), pair[1].String()}
	}

	return out, nil
}
