// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package treemap

import "golang.org/x/exp/constraints"

// node is a single binding in the tree. A nil child link means the
// subtree is absent; there are no sentinel nodes.
type node[K constraints.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}
