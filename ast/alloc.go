package ast

import "sync"

// An Allocator is told about every node the parser constructs and every node Destroy releases.
type Allocator interface {
	Alloc(n Node)
	Release(n Node)
}

type heap struct{}

func (heap) Alloc(Node)   {}
func (heap) Release(Node) {}

// Heap is the default Allocator. It leaves reclamation to the garbage collector.
var Heap Allocator = heap{}

// New registers n with alloc and returns it.
func New[N Node](alloc Allocator, n N) N {
	alloc.Alloc(n)
	return n
}

// Destroy releases the tree rooted at n, children before parents.
//
// Child links are cleared as each node is released. Destroying the same tree twice is undefined.
func Destroy(n Node, alloc Allocator) {
	if alloc == nil {
		alloc = Heap
	}
	_ = Visit(n, func(n Node, next func() error) error {
		_ = next()
		switch n := n.(type) {
		case *Main:
			n.Body = nil
		case *Negative:
			n.Body = nil
		case *Add:
			n.Left, n.Right = nil, nil
		case *Subtract:
			n.Left, n.Right = nil, nil
		case *Multiply:
			n.Left, n.Right = nil, nil
		case *Divide:
			n.Left, n.Right = nil, nil
		}
		alloc.Release(n)
		return nil
	})
}

// Counter is an Allocator that tracks live nodes. It is safe for concurrent use.
type Counter struct {
	lock     sync.Mutex
	live     map[Node]bool
	allocs   int
	releases int
	doubles  int
}

var _ Allocator = &Counter{}

func (c *Counter) Alloc(n Node) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.live == nil {
		c.live = map[Node]bool{}
	}
	c.live[n] = true
	c.allocs++
}

func (c *Counter) Release(n Node) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.releases++
	if !c.live[n] {
		c.doubles++
		return
	}
	delete(c.live, n)
}

// Live returns the number of allocated nodes not yet released.
func (c *Counter) Live() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.live)
}

// Allocs returns the total number of allocations.
func (c *Counter) Allocs() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.allocs
}

// Releases returns the total number of releases.
func (c *Counter) Releases() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.releases
}

// Unknown returns how many releases were for nodes that were not live.
func (c *Counter) Unknown() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.doubles
}
