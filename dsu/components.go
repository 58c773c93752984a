package dsu

// Components unions every pair and returns the resulting groups. Groups are
// ordered by the first appearance of any of their members in items, and
// members keep their order from items.
//
// Errors: ErrUnknownElement if a pair mentions an element not in items.
func Components[T comparable](items []T, pairs [][2]T) ([][]T, error) {
	d := New(items...)
	for _, p := range pairs {
		if _, err := d.Union(p[0], p[1]); err != nil {
			return nil, err
		}
	}

	slot := make(map[T]int, d.Count()) // root -> index in groups
	seen := make(map[T]bool, len(items))
	groups := make([][]T, 0, d.Count())
	for _, x := range items {
		if seen[x] {
			continue
		}
		seen[x] = true

		r := d.root(x)
		i, ok := slot[r]
		if !ok {
			i = len(groups)
			slot[r] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], x)
	}

	return groups, nil
}
