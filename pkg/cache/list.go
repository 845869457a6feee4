package cache

// node is a recency list element. The index holds a non-owning reference to
// it, so a node must leave the index and the list in the same critical
// section.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// recencyList orders nodes from most recently used (head.next) to least
// recently used (tail.prev). head and tail are sentinels and never hold an
// entry. It is not safe for concurrent use; LRUCache guards it.
type recencyList[K comparable, V any] struct {
	head *node[K, V]
	tail *node[K, V]
	size int
}

func newRecencyList[K comparable, V any]() *recencyList[K, V] {
	l := &recencyList[K, V]{
		head: &node[K, V]{},
		tail: &node[K, V]{},
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

// pushFront splices n in right after the head sentinel.
func (l *recencyList[K, V]) pushFront(n *node[K, V]) {
	n.prev = l.head
	n.next = l.head.next
	l.head.next.prev = n
	l.head.next = n
	l.size++
}

// moveToFront is only valid for a node currently in the list.
func (l *recencyList[K, V]) moveToFront(n *node[K, V]) {
	if l.head.next == n {
		return
	}
	l.remove(n)
	l.pushFront(n)
}

// remove unlinks n. Calling it on a node that is not linked is a no-op.
func (l *recencyList[K, V]) remove(n *node[K, V]) {
	if n.prev == nil || n.next == nil {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	l.size--
}

// removeLast unlinks and returns the least recently used node, or nil if the
// list is empty.
func (l *recencyList[K, V]) removeLast() *node[K, V] {
	last := l.tail.prev
	if last == l.head {
		return nil
	}
	l.remove(last)
	return last
}

// back returns the least recently used node without unlinking it.
func (l *recencyList[K, V]) back() *node[K, V] {
	if l.tail.prev == l.head {
		return nil
	}
	return l.tail.prev
}

// clear drops every node at once by rejoining the sentinels. Dropped nodes
// keep stale links but are unreachable once the index is cleared too.
func (l *recencyList[K, V]) clear() {
	l.head.next = l.tail
	l.tail.prev = l.head
	l.size = 0
}

func (l *recencyList[K, V]) len() int {
	return l.size
}

// each walks the list from most to least recently used until fn returns false.
func (l *recencyList[K, V]) each(fn func(n *node[K, V]) bool) {
	for n := l.head.next; n != l.tail; n = n.next {
		if !fn(n) {
			return
		}
	}
}
