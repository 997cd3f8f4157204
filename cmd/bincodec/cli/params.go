// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagBinder is implemented by types that bind their own flags manually.
// When a struct field's type implements FlagBinder, [BindFlags] calls
// AddFlags instead of reflecting struct tags. [InputOptions] uses this
// to register its mutually exclusive encodings with their own help.
type FlagBinder interface {
	AddFlags(flagSet *pflag.FlagSet)
}

// FlagsFromParams returns a flag set bound to the tagged fields of
// params, a pointer to a struct. A params type that cannot be bound is
// a programming error and panics. [Command.Params] calls it on every
// parse, so each command's flags start from their defaults.
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags registers a flag for each tagged field of params, which
// must be a pointer to a struct:
//
//	Scheme string `flag:"scheme" desc:"encoder to use" default:"uint-opt"`
//	Count  int    `flag:"count,n" desc:"number of values"`
//
// The flag tag holds the long name and an optional shorthand after a
// comma. Untagged fields are skipped. Supported field types are
// string, bool, int, int64 and uint64; integer defaults may use a 0x
// prefix.
//
// A struct field whose pointer implements [FlagBinder] registers its
// own flags, whether embedded or named. Other embedded structs are
// walked recursively, which is how every subcommand shares --config
// and --verbose.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return bindStruct(value.Elem(), flagSet)
}

// flagSpec is what the struct tags of one field say about its flag.
type flagSpec struct {
	name, shorthand string
	usage           string
	defaultText     string
}

func specFor(field reflect.StructField) (flagSpec, bool) {
	tag, ok := field.Tag.Lookup("flag")
	if !ok || tag == "" {
		return flagSpec{}, false
	}
	name, shorthand, _ := strings.Cut(tag, ",")
	return flagSpec{
		name:        name,
		shorthand:   shorthand,
		usage:       field.Tag.Get("desc"),
		defaultText: field.Tag.Get("default"),
	}, true
}

func bindStruct(structValue reflect.Value, flagSet *pflag.FlagSet) error {
	structType := structValue.Type()
	for i := range structType.NumField() {
		field, fieldValue := structType.Field(i), structValue.Field(i)
		isStruct := field.Type.Kind() == reflect.Struct

		// reflect can only call methods on exported fields.
		if isStruct && field.IsExported() && fieldValue.CanAddr() {
			if binder, ok := fieldValue.Addr().Interface().(FlagBinder); ok {
				binder.AddFlags(flagSet)
				continue
			}
		}
		if isStruct && field.Anonymous {
			if err := bindStruct(fieldValue, flagSet); err != nil {
				return fmt.Errorf("embedded %s: %w", field.Name, err)
			}
			continue
		}

		spec, ok := specFor(field)
		if !ok {
			continue
		}
		if !fieldValue.CanAddr() {
			return fmt.Errorf("field %s: not addressable", field.Name)
		}
		if err := bindField(fieldValue, flagSet, spec); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

// bindField registers one field according to its Go type.
func bindField(fieldValue reflect.Value, flagSet *pflag.FlagSet, spec flagSpec) error {
	var err error
	switch target := fieldValue.Addr().Interface().(type) {
	case *string:
		flagSet.StringVarP(target, spec.name, spec.shorthand, spec.defaultText, spec.usage)
	case *bool:
		err = bindParsed(flagSet.BoolVarP, target, spec, strconv.ParseBool)
	case *int:
		err = bindParsed(flagSet.IntVarP, target, spec, func(s string) (int, error) {
			value, err := strconv.ParseInt(s, 0, strconv.IntSize)
			return int(value), err
		})
	case *int64:
		err = bindParsed(flagSet.Int64VarP, target, spec, func(s string) (int64, error) {
			return strconv.ParseInt(s, 0, 64)
		})
	case *uint64:
		err = bindParsed(flagSet.Uint64VarP, target, spec, func(s string) (uint64, error) {
			return strconv.ParseUint(s, 0, 64)
		})
	default:
		return fmt.Errorf("unsupported type %s for flag --%s", fieldValue.Type(), spec.name)
	}
	if err != nil {
		return fmt.Errorf("default for --%s: %w", spec.name, err)
	}
	return nil
}

// bindParsed registers target with bind after parsing the default
// text. An empty default leaves the zero value.
func bindParsed[T any](
	bind func(target *T, name, shorthand string, value T, usage string),
	target *T, spec flagSpec, parse func(string) (T, error),
) error {
	var defaultValue T
	if spec.defaultText != "" {
		var err error
		if defaultValue, err = parse(spec.defaultText); err != nil {
			return err
		}
	}
	bind(target, spec.name, spec.shorthand, defaultValue, spec.usage)
	return nil
}
