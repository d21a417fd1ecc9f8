package basis

import (
	"fmt"
	"reflect"

	"github.com/kbukum/fixmap/errors"
)

// Resolver resolves a basis object to its value. A literal or one-shot
// factory resolves to the value directly; a teardown-yielding factory
// resolves to an unstarted *Handle.
type Resolver interface {
	// Resolve resolves obj with no parametrization context; factories are
	// invoked with zero arguments.
	Resolve(obj any) (any, error)
	// ResolveParametrized resolves obj threading param into every factory
	// invocation. Literals ignore the parameter.
	ResolveParametrized(obj any, param any) (any, error)
}

// TaggedResolver resolves basis objects by their explicit wrapper tags.
// Tagging is caller-supplied and authoritative: anything that is not a
// Callable or GeneratorFunc is a literal, functions included.
type TaggedResolver struct{}

// Resolve implements Resolver.
func (TaggedResolver) Resolve(obj any) (any, error) {
	return taggedResolve(obj, nil, false)
}

// ResolveParametrized implements Resolver.
func (TaggedResolver) ResolveParametrized(obj any, param any) (any, error) {
	return taggedResolve(obj, param, true)
}

func taggedResolve(obj any, param any, parametrized bool) (any, error) {
	switch b := obj.(type) {
	case GeneratorFunc:
		res, err := invokeFactory(b.Fn, param, parametrized)
		if err != nil {
			return nil, err
		}
		it, ok := res.(Iterator)
		if !ok {
			return nil, errors.InvalidBasis(
				fmt.Sprintf("generator basis must return an Iterator, got %T", res))
		}
		return NewHandle(it), nil
	case Callable:
		return invokeFactory(b.Fn, param, parametrized)
	default:
		return obj, nil
	}
}

// AutoResolver classifies basis objects at call time: a non-function is a
// literal; a function is invoked, and if its result satisfies Iterator it
// is retroactively treated as teardown-yielding, otherwise the result is
// the resolved value.
//
// Classification happens after invocation because a one-shot factory
// cannot be told apart from a teardown-yielding one without calling it.
// The known consequence: a one-shot factory whose return value satisfies
// Iterator is silently treated as teardown-yielding. That is accepted
// behavior of this strategy, not recovered; use TaggedResolver when the
// distinction must be certain.
type AutoResolver struct{}

// Resolve implements Resolver.
func (AutoResolver) Resolve(obj any) (any, error) {
	return autoResolve(obj, nil, false)
}

// ResolveParametrized implements Resolver.
func (AutoResolver) ResolveParametrized(obj any, param any) (any, error) {
	return autoResolve(obj, param, true)
}

func autoResolve(obj any, param any, parametrized bool) (any, error) {
	if obj == nil || reflect.ValueOf(obj).Kind() != reflect.Func {
		return obj, nil
	}

	res, err := invokeFactory(obj, param, parametrized)
	if err != nil {
		return nil, err
	}

	if it, ok := res.(Iterator); ok {
		return NewHandle(it), nil
	}
	return res, nil
}

// invokeFactory calls a factory function with zero arguments, or with the
// parametrization value when parametrized. Supported result shapes are
// (v) and (v, error).
func invokeFactory(fn any, param any, parametrized bool) (any, error) {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return nil, errors.InvalidBasis(fmt.Sprintf("factory must be a function, got %T", fn))
	}

	ft := fv.Type()
	if err := checkFactoryResults(ft); err != nil {
		return nil, err
	}

	var args []reflect.Value
	if parametrized {
		if ft.NumIn() != 1 {
			return nil, errors.InvalidBasis(fmt.Sprintf(
				"parametrized factory must take exactly one argument, %s takes %d", ft, ft.NumIn()))
		}
		arg, err := paramValue(param, ft.In(0))
		if err != nil {
			return nil, err
		}
		args = []reflect.Value{arg}
	} else if ft.NumIn() != 0 {
		return nil, errors.InvalidBasis(fmt.Sprintf(
			"factory must take no arguments, %s takes %d", ft, ft.NumIn()))
	}

	return factoryResults(fv.Call(args))
}

// paramValue converts the parametrization value to the factory's argument type.
func paramValue(param any, in reflect.Type) (reflect.Value, error) {
	if param == nil {
		return reflect.Zero(in), nil
	}
	pv := reflect.ValueOf(param)
	if pv.Type().AssignableTo(in) {
		return pv, nil
	}
	if pv.Type().ConvertibleTo(in) {
		return pv.Convert(in), nil
	}
	return reflect.Value{}, errors.InvalidBasis(fmt.Sprintf(
		"parameter %T is not assignable to factory argument %s", param, in))
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// checkFactoryResults validates the (v) and (v, error) result shapes.
func checkFactoryResults(ft reflect.Type) error {
	switch ft.NumOut() {
	case 1:
		return nil
	case 2:
		if !ft.Out(1).Implements(errorType) {
			return errors.InvalidBasis(fmt.Sprintf(
				"factory second result must be an error, %s returns %s", ft, ft.Out(1)))
		}
		return nil
	default:
		return errors.InvalidBasis("factory must return (value) or (value, error)")
	}
}

func factoryResults(results []reflect.Value) (any, error) {
	if len(results) == 2 {
		if err := results[1].Interface(); err != nil {
			return nil, err.(error)
		}
	}
	return results[0].Interface(), nil
}
