package domain

// SimilarChars returns the number of matching bytes between a and b using
// the longest-common-substring recursion: take the first longest common
// substring, then add the matches of the remainders to its left and to its
// right.
func SimilarChars(a, b string) int {
	if a == "" || b == "" {
		return 0
	}

	pos1, pos2, length := longestCommonSubstring(a, b)
	if length == 0 {
		return 0
	}

	sum := length
	if pos1 > 0 && pos2 > 0 {
		sum += SimilarChars(a[:pos1], b[:pos2])
	}
	if pos1+length < len(a) && pos2+length < len(b) {
		sum += SimilarChars(a[pos1+length:], b[pos2+length:])
	}
	return sum
}

// SimilarityPercent is 2*matched/(len(a)+len(b))*100. Two empty strings
// score 0.
func SimilarityPercent(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 0
	}
	return float64(SimilarChars(a, b)) * 2 * 100 / float64(total)
}

// longestCommonSubstring scans every start offset pair and keeps the first
// strictly longer run it sees.
func longestCommonSubstring(a, b string) (pos1, pos2, length int) {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			l := 0
			for i+l < len(a) && j+l < len(b) && a[i+l] == b[j+l] {
				l++
			}
			if l > length {
				pos1, pos2, length = i, j, l
			}
		}
	}
	return pos1, pos2, length
}
