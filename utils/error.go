// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

// Err returns the first non-nil error in [errs], or nil.
func Err(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
