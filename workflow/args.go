package workflow

import (
	"maps"
	"time"

	"github.com/spf13/cast"
)

// Args are the named arguments bound to an Action at construction time.
type Args map[string]any

func (a Args) clone() Args {
	if a == nil {
		return Args{}
	}
	return maps.Clone(a)
}

// Has reports whether key is bound.
func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}

func (a Args) lookup(key string) (any, error) {
	v, ok := a[key]
	if !ok {
		return nil, &ArgError{Key: key}
	}
	return v, nil
}

// String returns the argument converted to a string.
func (a Args) String(key string) (string, error) {
	v, err := a.lookup(key)
	if err != nil {
		return "", err
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", &ArgError{Key: key, Err: err}
	}
	return s, nil
}

// Int returns the argument converted to an int.
func (a Args) Int(key string) (int, error) {
	v, err := a.lookup(key)
	if err != nil {
		return 0, err
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, &ArgError{Key: key, Err: err}
	}
	return i, nil
}

// Float returns the argument converted to a float64.
func (a Args) Float(key string) (float64, error) {
	v, err := a.lookup(key)
	if err != nil {
		return 0, err
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, &ArgError{Key: key, Err: err}
	}
	return f, nil
}

// Bool returns the argument converted to a bool.
func (a Args) Bool(key string) (bool, error) {
	v, err := a.lookup(key)
	if err != nil {
		return false, err
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, &ArgError{Key: key, Err: err}
	}
	return b, nil
}

// Duration accepts time.Duration values, duration strings ("1.5s") and
// integers (nanoseconds).
func (a Args) Duration(key string) (time.Duration, error) {
	v, err := a.lookup(key)
	if err != nil {
		return 0, err
	}
	d, err := cast.ToDurationE(v)
	if err != nil {
		return 0, &ArgError{Key: key, Err: err}
	}
	return d, nil
}

// StringOr returns the string argument, or def when key is not bound.
func (a Args) StringOr(key, def string) (string, error) {
	if !a.Has(key) {
		return def, nil
	}
	return a.String(key)
}

// IntOr returns the int argument, or def when key is not bound.
func (a Args) IntOr(key string, def int) (int, error) {
	if !a.Has(key) {
		return def, nil
	}
	return a.Int(key)
}
