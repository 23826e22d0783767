package bookdeal

import (
	"github.com/samber/lo"
)

// HasMany returns the children that belong to parent, in collection order.
func HasMany[M, N any](
	parent M,
	children []N,
	belongTogether func(parent M, child N) bool,
) []N {
	return lo.Filter(children, func(child N, _ int) bool {
		return belongTogether(parent, child)
	})
}

// Through maps join records onto the entity on their far side.
func Through[N, T any](links []N, pick func(link N) T) []T {
	return lo.Map(links, func(link N, _ int) T { return pick(link) })
}

func HasAny[M, N any](
	parent M,
	children []N,
	belongTogether func(parent M, child N) bool,
) bool {
	return lo.ContainsBy(children, func(child N) bool {
		return belongTogether(parent, child)
	})
}

func authorOf(a *Author, c *Contract) bool { return c.author == a }

func bookOf(b *Book, c *Contract) bool { return c.book == b }
