package textutil

// MatchRatio scores the similarity of two strings in [0, 1] as
// 2*M/(len(a)+len(b)), where M is the total length of the matching blocks
// found by recursively locating the longest common substring and matching
// the regions to its left and right. Identical strings score 1, strings
// with no runes in common score 0. Deterministic and symmetric in score.
func MatchRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	matched := matchingSize(ra, rb, 0, len(ra), 0, len(rb))
	return 2 * float64(matched) / float64(total)
}

func matchingSize(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	return size +
		matchingSize(a, b, alo, i, blo, j) +
		matchingSize(a, b, i+size, ahi, j+size, bhi)
}

// longestMatch finds the longest block a[i:i+size] == b[j:j+size] within the
// given bounds, preferring the earliest block in a, then in b, on ties.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	// lengths[j] holds the length of the match ending at a[i-1], b[j-1]
	// from the previous row.
	lengths := make([]int, bhi-blo+1)
	row := make([]int, bhi-blo+1)
	for i := alo; i < ahi; i++ {
		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				row[j-blo+1] = 0
				continue
			}
			k := lengths[j-blo] + 1
			row[j-blo+1] = k
			if k > bestsize {
				besti = i - k + 1
				bestj = j - k + 1
				bestsize = k
			}
		}
		lengths, row = row, lengths
		row[0] = 0
	}
	return besti, bestj, bestsize
}
