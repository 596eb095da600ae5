package ast

// Visitor is called for each node. Calling next descends into the node's children, so work done
// before next is pre-order and work done after it is post-order.
type Visitor func(n Node, next func() error) error

// Visit walks the tree rooted at n.
func Visit(n Node, visitor Visitor) error {
	if n == nil {
		return nil
	}
	return visitor(n, func() error {
		for _, child := range Children(n) {
			if err := Visit(child, visitor); err != nil {
				return err
			}
		}
		return nil
	})
}
