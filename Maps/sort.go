package Maps

// QuickSort s in place in ascending order of cmp. It partitions around the last element of each sub-range and recurses on both sides.
// Not stable; meant for slices without equal elements, like the keys of a Dictionary.
func QuickSort[T any](s []T, cmp func(T, T) int) {
	quickSort(s, 0, len(s)-1, cmp)
}

func quickSort[T any](s []T, left, right int, cmp func(T, T) int) {
	if right-left <= 0 {
		return
	}
	p := partition(s, left, right, cmp)
	quickSort(s, left, p-1, cmp)
	quickSort(s, p+1, right, cmp)
}

// partition [left,right] around pivot s[right]. Returns the final index of the pivot.
func partition[T any](s []T, left, right int, cmp func(T, T) int) int {
	pivot := s[right]
	l, r := left-1, right
	for {
		for l++; cmp(s[l], pivot) < 0; l++ {
		}
		for r--; r > left && cmp(s[r], pivot) > 0; r-- {
		}
		if l >= r {
			break
		}
		s[l], s[r] = s[r], s[l]
	}
	s[l], s[right] = s[right], s[l]
	return l
}
