// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package treemap implements an in-memory ordered map backed by an
// unbalanced binary search tree. The map is a single-owner structure:
// it performs no internal synchronization, and mutating calls require
// exclusive access. No rebalancing is done, so the tree's shape is
// whatever the insertion and deletion order produces.
package treemap

import (
	"golang.org/x/exp/constraints"
)

// TreeMap associates keys of an ordered type K with values of an
// arbitrary type V. The zero state returned by New is an empty map.
type TreeMap[K constraints.Ordered, V any] struct {
	root *node[K, V]
	size uint64
}

// New returns an empty map. No node storage is allocated.
func New[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return &TreeMap[K, V]{}
}

// Len is used to return the number of bindings in the map.
func (t *TreeMap[K, V]) Len() int {
	return int(t.size)
}

// Insert binds key to value, overwriting any existing binding. It
// returns the displaced value and true when the key was already
// present, or the zero value and false when a new node was created.
func (t *TreeMap[K, V]) Insert(key K, value V) (V, bool) {
	root, old, existed := insert(t.root, key, value)
	t.root = root
	if !existed {
		t.size++
	}
	return old, existed
}

// insert descends from n comparing key against each node's key and
// returns the new subtree root. A new leaf is allocated at the first
// absent link; an equal key overwrites the value in place.
func insert[K constraints.Ordered, V any](n *node[K, V], key K, value V) (*node[K, V], V, bool) {
	if n == nil {
		var zero V
		return &node[K, V]{key: key, value: value}, zero, false
	}
	var old V
	var existed bool
	switch {
	case key < n.key:
		n.left, old, existed = insert(n.left, key, value)
	case key > n.key:
		n.right, old, existed = insert(n.right, key, value)
	default:
		old, existed = n.value, true
		n.value = value
	}
	return n, old, existed
}

// Get returns the value bound to key, or ErrNotFound if the key is
// absent. The value is returned by copy; for pointer-typed V the
// caller shares the pointee. Get does not allocate or mutate.
func (t *TreeMap[K, V]) Get(key K) (V, error) {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.value, nil
		}
	}
	var zero V
	return zero, ErrNotFound
}

// Contains reports whether key is bound in the map.
func (t *TreeMap[K, V]) Contains(key K) bool {
	_, err := t.Get(key)
	return err == nil
}

// Delete removes the binding for key and returns its value, or
// ErrNotFound if the key is absent. On a miss the map is unchanged;
// the descent is read-only until the matching node is found.
func (t *TreeMap[K, V]) Delete(key K) (V, error) {
	root, val, found := remove(t.root, key)
	if !found {
		var zero V
		return zero, ErrNotFound
	}
	t.root = root
	t.size--
	return val, nil
}

// remove descends from n to the node matching key and splices it out,
// returning the new subtree root. A node with at most one child is
// replaced by that child (or by nil). A node with two children is
// replaced by a fresh node carrying its in-order successor's key and
// value, the deleted node's left subtree, and the right subtree with
// the successor unlinked.
func remove[K constraints.Ordered, V any](n *node[K, V], key K) (*node[K, V], V, bool) {
	var zero V
	if n == nil {
		return nil, zero, false
	}
	var val V
	var found bool
	switch {
	case key < n.key:
		n.left, val, found = remove(n.left, key)
	case key > n.key:
		n.right, val, found = remove(n.right, key)
	default:
		val = n.value
		switch {
		case n.left == nil && n.right == nil:
			return nil, val, true
		case n.left == nil:
			return n.right, val, true
		case n.right == nil:
			return n.left, val, true
		default:
			sk, sv, right := extractMin(n.right)
			return &node[K, V]{key: sk, value: sv, left: n.left, right: right}, val, true
		}
	}
	return n, val, found
}

// extractMin unlinks the minimum-keyed node of the subtree rooted at n
// and returns its key, its value, and the remaining subtree. The
// minimum has no left child; its right subtree takes its place.
func extractMin[K constraints.Ordered, V any](n *node[K, V]) (K, V, *node[K, V]) {
	if n.left == nil {
		return n.key, n.value, n.right
	}
	k, v, left := extractMin(n.left)
	n.left = left
	return k, v, n
}

// Minimum returns the smallest-keyed binding, or false on an empty map.
func (t *TreeMap[K, V]) Minimum() (K, V, bool) {
	n := t.root
	if n == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.key, n.value, true
}

// Maximum returns the largest-keyed binding, or false on an empty map.
func (t *TreeMap[K, V]) Maximum() (K, V, bool) {
	n := t.root
	if n == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}
