// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package treemap

import "github.com/cockroachdb/errors"

// ErrNotFound is returned by Get and Delete when no binding exists for
// the requested key. Callers should match it with errors.Is.
var ErrNotFound = errors.New("treemap: key not found")
