package canon

import (
	"context"
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/utfx/errors"
)

// Lift converts flat core values of a string or char type into a Go value.
// Type aliases of either are followed.
func Lift(ctx context.Context, opts Options, t wit.Type, flat []uint64) (any, error) {
	return lift(ctx, opts, t, flat, nil)
}

// lift carries the alias names followed so far as the error path.
func lift(ctx context.Context, opts Options, t wit.Type, flat []uint64, path []string) (any, error) {
	switch t := t.(type) {
	case wit.String:
		if len(flat) < 2 {
			return nil, flatError(errors.PhaseLift, "string", 2, len(flat), path)
		}
		return LiftString(ctx, opts, uint32(flat[0]), uint32(flat[1]))

	case wit.Char:
		if len(flat) < 1 {
			return nil, flatError(errors.PhaseLift, "char", 1, len(flat), path)
		}
		return LiftChar(uint32(flat[0]))

	case *wit.TypeDef:
		path = withAlias(path, t)
		if kind, ok := t.Kind.(wit.Type); ok {
			return lift(ctx, opts, kind, flat, path)
		}
		return nil, unsupported(errors.PhaseLift, t, path)

	default:
		return nil, unsupported(errors.PhaseLift, t, path)
	}
}

// Lower converts a Go value of a string or char type into flat core values.
func Lower(ctx context.Context, opts Options, t wit.Type, v any) ([]uint64, error) {
	return lower(ctx, opts, t, v, nil)
}

func lower(ctx context.Context, opts Options, t wit.Type, v any, path []string) ([]uint64, error) {
	switch t := t.(type) {
	case wit.String:
		s, ok := v.(string)
		if !ok {
			return nil, mismatch(t, v, path)
		}
		ptr, length, err := LowerString(ctx, opts, s)
		if err != nil {
			return nil, err
		}
		return []uint64{uint64(ptr), uint64(length)}, nil

	case wit.Char:
		r, ok := v.(rune)
		if !ok {
			return nil, mismatch(t, v, path)
		}
		c, err := LowerChar(r)
		if err != nil {
			return nil, err
		}
		return []uint64{uint64(c)}, nil

	case *wit.TypeDef:
		path = withAlias(path, t)
		if kind, ok := t.Kind.(wit.Type); ok {
			return lower(ctx, opts, kind, v, path)
		}
		return nil, unsupported(errors.PhaseLower, t, path)

	default:
		return nil, unsupported(errors.PhaseLower, t, path)
	}
}

func withAlias(path []string, t *wit.TypeDef) []string {
	if t.Name == nil {
		return path
	}
	return append(path[:len(path):len(path)], *t.Name)
}

func flatError(phase errors.Phase, what string, need, have int, path []string) error {
	return errors.New(phase, errors.KindInvalidInput).
		Path(path...).
		WitType(what).
		Detail("need %d flat values, have %d", need, have).
		Build()
}

func unsupported(phase errors.Phase, t wit.Type, path []string) error {
	return errors.New(phase, errors.KindUnsupported).
		Path(path...).
		WitType(fmt.Sprintf("%T", t)).
		Detail("only string and char are handled").
		Build()
}

func mismatch(t wit.Type, v any, path []string) error {
	return errors.New(errors.PhaseLower, errors.KindInvalidInput).
		Path(path...).
		WitType(fmt.Sprintf("%T", t)).
		Value(v).
		Detail("unexpected Go type %T", v).
		Build()
}
