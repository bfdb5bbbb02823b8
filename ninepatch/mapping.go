package ninepatch

import "fmt"

// buildMapping returns, for each of the target coordinates along one axis,
// the interior coordinate it copies from.
//
// The diff extra pixels are spread across the patches: every patch repeats
// diff/len(patches)+1 times and the first diff%len(patches) patches, in list
// order, repeat once more. Other coordinates appear once. The result is
// non-decreasing and has exactly target entries.
func buildMapping(diff, target int, patches []int) ([]int, error) {
	if diff > 0 && len(patches) == 0 {
		return nil, fmt.Errorf("spreading %d pixels over zero patches: %w", diff, ErrDegenerateStretch)
	}
	var (
		dim         = target - diff
		mapping     = make([]int, 0, target)
		base, extra = 1, 0
		next        = 0
	)
	if len(patches) > 0 {
		base = diff/len(patches) + 1
		extra = diff % len(patches)
	}
	for src := 0; src < dim; src++ {
		repeat := 1
		if next < len(patches) && patches[next] == src {
			repeat = base
			if next < extra {
				repeat++
			}
			next++
		}
		for ; repeat > 0; repeat-- {
			mapping = append(mapping, src)
		}
	}
	return mapping, nil
}
