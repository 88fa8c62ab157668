// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// KeyEntry names one required key, with optional required children when
// the key holds an object.
type KeyEntry struct {
	name     string
	children Keys
}

// Key returns a required key. Children, when given, must all be present in
// the object stored under name.
//
//	validators.Keys{
//		validators.Key("a"),
//		validators.Key("c", validators.Key("d"), validators.Key("e")),
//	}
func Key(name string, children ...KeyEntry) KeyEntry {
	return KeyEntry{name: name, children: Keys(children)}
}

// Keys is an ordered list of required keys.
type Keys []KeyEntry

// Validate implements Validator. It fails with ErrKeyMissing on the first
// absent key and with ErrNotAnObject when a key with children does not
// hold an object.
func (k Keys) Validate(body any) error {
	return k.validate(body, nil)
}

func (k Keys) validate(body any, path []string) error {
	object, ok := body.(map[string]any)
	if !ok {
		return newPathError(path, ErrNotAnObject)
	}

	for _, key := range k {
		keyPath := appendPath(path, key.name)

		value, present := object[key.name]
		if !present {
			return newPathError(keyPath, ErrKeyMissing)
		}

		if len(key.children) > 0 {
			if err := key.children.validate(value, keyPath); err != nil {
				return err
			}
		}
	}

	return nil
}
