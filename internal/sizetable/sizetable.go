// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package sizetable loads icon size tables from Starlark files.

A size table file must define a global called sizes. It is either a dict
mapping sizes to file names:

	sizes = {
	    1024: "icon_1024.png",
	    180: "icon_180.png",
	}

or a list of (size, name) tuples:

	sizes = [(s, "icon_%d.png" % s) for s in (1024, 180, 120)]

Icons are generated in the order they are declared.
*/
package sizetable

import (
	"errors"
	"fmt"

	"go.astrophena.name/appicon/internal/icon"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const global = "sizes"

// Possible errors, used in tests.
var (
	errMissing   = errors.New("size table file doesn't define " + global)
	errWrongType = errors.New(global + " must be a dict or a list of (size, name) tuples")
	errEntry     = errors.New("invalid size table entry")
)

// Load reads the size table from the Starlark file at path.
func Load(path string) (icon.Table, error) {
	return load(path, nil)
}

// load is like Load, but reads the file from src if it's not nil.
func load(path string, src any) (icon.Table, error) {
	thread := &starlark.Thread{Name: path}
	globals, err := starlark.ExecFileOptions(
		&syntax.FileOptions{
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
		},
		thread,
		path,
		src,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("loading size table: %w", err)
	}

	v, ok := globals[global]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, errMissing)
	}

	var items []starlark.Value
	switch v := v.(type) {
	case *starlark.Dict:
		for _, kv := range v.Items() {
			items = append(items, kv)
		}
	case *starlark.List:
		for i := range v.Len() {
			items = append(items, v.Index(i))
		}
	case starlark.Tuple:
		items = append(items, v...)
	default:
		return nil, fmt.Errorf("%s: %w, got %s", path, errWrongType, v.Type())
	}

	t := make(icon.Table, 0, len(items))
	for i, item := range items {
		e, err := entry(item)
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i, err)
		}
		t = append(t, e)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func entry(v starlark.Value) (icon.Entry, error) {
	tup, ok := v.(starlark.Tuple)
	if !ok || len(tup) != 2 {
		return icon.Entry{}, fmt.Errorf("%w: want (size, name), got %s", errEntry, v)
	}
	size, err := starlark.AsInt32(tup[0])
	if err != nil {
		return icon.Entry{}, fmt.Errorf("%w: size: %v", errEntry, err)
	}
	name, ok := starlark.AsString(tup[1])
	if !ok {
		return icon.Entry{}, fmt.Errorf("%w: name must be a string, got %s", errEntry, tup[1].Type())
	}
	return icon.Entry{Size: size, Name: name}, nil
}
