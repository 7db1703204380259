// internal/fieldpath/fieldpath.go
//
// Path-addressed mutations over content documents.
//
// Context
// -------
// The page-builder edits one field at a time: a top-level key ("title"),
// or one field of one element inside a repeating list ("items.2.logo").
// These helpers apply such a mutation and hand back a new document, so a
// caller can hold the previous snapshot for diffing or undo.  Inputs are
// never mutated; the touched spine (top map, list, element) is copied,
// untouched siblings are shared.
//
// Path grammar
// ------------
//	<key>                      — set/replace one top-level key.
//	<listKey>.<index>.<subKey> — replace one field of list element <index>.
//
// Anything else (two segments, four segments, non-numeric index) is a
// caller bug and fails with ErrInvalidPath rather than a silent no-op.
//
// Notes
// -----
// • List values are the `[]any` produced by encoding/json; elements that
//   are addressed through a path must be `map[string]any`.
// • Oxford commas, two spaces after periods.
// • Max line length 100 columns.
package fieldpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath flags a malformed field path.  Wrap sites add detail;
// match with errors.Is.
var ErrInvalidPath = errors.New("fieldpath: invalid path")

// Value aliases the generic content document shape.
type Value = map[string]any

// Set applies one path-addressed mutation and returns the new document.
func Set(v Value, path string, newValue any) (Value, error) {
	segs := strings.Split(path, ".")
	switch len(segs) {
	case 1:
		if segs[0] == "" {
			return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
		}
		out := cloneTop(v)
		out[segs[0]] = newValue
		return out, nil

	case 3:
		listKey, idxSeg, subKey := segs[0], segs[1], segs[2]
		if listKey == "" || subKey == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
		idx, err := strconv.Atoi(idxSeg)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("%w: index segment %q", ErrInvalidPath, idxSeg)
		}

		list, err := listAt(v, listKey)
		if err != nil {
			return nil, err
		}
		if idx >= len(list) {
			return nil, fmt.Errorf("%w: index %d out of range for %q", ErrInvalidPath, idx, listKey)
		}
		elem, ok := list[idx].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: element %d of %q is not a map", ErrInvalidPath, idx, listKey)
		}

		newElem := make(map[string]any, len(elem)+1)
		for k, val := range elem {
			newElem[k] = val
		}
		newElem[subKey] = newValue

		newList := append([]any(nil), list...)
		newList[idx] = newElem

		out := cloneTop(v)
		out[listKey] = newList
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %q has %d segments", ErrInvalidPath, path, len(segs))
	}
}

// SetItem replaces the whole element at index inside the list field.
func SetItem(v Value, listKey string, index int, item map[string]any) (Value, error) {
	list, err := listAt(v, listKey)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: index %d out of range for %q", ErrInvalidPath, index, listKey)
	}
	newList := append([]any(nil), list...)
	newList[index] = item

	out := cloneTop(v)
	out[listKey] = newList
	return out, nil
}

// AppendItem adds an element to the end of the list field, creating the
// list when the key is absent.
func AppendItem(v Value, listKey string, item map[string]any) (Value, error) {
	var list []any
	if existing, ok := v[listKey]; ok {
		list, ok = existing.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a list", ErrInvalidPath, listKey)
		}
	}
	newList := make([]any, 0, len(list)+1)
	newList = append(newList, list...)
	newList = append(newList, item)

	out := cloneTop(v)
	out[listKey] = newList
	return out, nil
}

// RemoveItem drops the element at index.  Out-of-range indices return the
// document unchanged — the UI may race ahead of saved state, and deleting
// nothing is the safe answer there.
func RemoveItem(v Value, listKey string, index int) (Value, error) {
	list, err := listAt(v, listKey)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(list) {
		return v, nil
	}
	newList := make([]any, 0, len(list)-1)
	newList = append(newList, list[:index]...)
	newList = append(newList, list[index+1:]...)

	out := cloneTop(v)
	out[listKey] = newList
	return out, nil
}

// listAt fetches v[listKey] as a list or fails with ErrInvalidPath.
func listAt(v Value, listKey string) ([]any, error) {
	raw, ok := v[listKey]
	if !ok {
		return nil, fmt.Errorf("%w: no list field %q", ErrInvalidPath, listKey)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a list", ErrInvalidPath, listKey)
	}
	return list, nil
}

// cloneTop shallow-copies the top-level map so siblings stay shared.
func cloneTop(v Value) Value {
	out := make(Value, len(v)+1)
	for k, val := range v {
		out[k] = val
	}
	return out
}
