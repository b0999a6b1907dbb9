package model

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Flatten converts a record into a plain key/value mapping keyed by the
// record's JSON field names. Fields marked omitempty disappear when
// unset, so the mapping only carries the keys the record would put on
// the wire.
func Flatten(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "flatten record")
	}

	flat := make(map[string]any)
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, errors.Wrap(err, "flatten record")
	}

	return flat, nil
}

// Merge combines two flattened mappings into one. The result contains
// every key of left and every key of right; on collision the right
// value wins. Single pass, no recursion, inputs are never mutated.
func Merge(left, right map[string]any) map[string]any {
	merged := make(map[string]any, len(left)+len(right))
	for k, v := range left {
		merged[k] = v
	}
	for k, v := range right {
		merged[k] = v
	}
	return merged
}

// MergeRecords flattens both records and merges them, right-hand record
// winning on key collision. Inputs are assumed to be already validated;
// the only possible failure is a record that cannot be flattened, which
// for the fixed shapes in this package cannot happen at runtime.
//
// The merge is only ever invoked with records that carry no password
// field (PersonUpdate, Location); response projection for
// password-bearing records happens in Person.Out, not here.
func MergeRecords(left, right any) (map[string]any, error) {
	leftFlat, err := Flatten(left)
	if err != nil {
		return nil, err
	}

	rightFlat, err := Flatten(right)
	if err != nil {
		return nil, err
	}

	return Merge(leftFlat, rightFlat), nil
}
