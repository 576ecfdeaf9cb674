// Package similarity scores how alike two point-of-interest names are.
package similarity

// winklerScale is the prefix boost scaling factor.
const winklerScale = 0.1

// winklerMaxPrefix caps the common prefix considered by the Winkler boost.
const winklerMaxPrefix = 4

// Jaro returns the Jaro similarity of two strings in [0, 1]. Matching is
// rune-based with the standard window of max(len)/2 - 1 and transpositions
// counted over matched runes in order.
func Jaro(s1, s2 string) float64 {
	r1 := []rune(s1)
	r2 := []rune(s2)

	if len(r1) == 0 && len(r2) == 0 {
		return 1
	}
	if len(r1) == 0 || len(r2) == 0 {
		return 0
	}
	if string(r1) == string(r2) {
		return 1
	}

	window := max(len(r1), len(r2))/2 - 1
	if window < 0 {
		window = 0
	}

	matched1 := make([]bool, len(r1))
	matched2 := make([]bool, len(r2))

	matches := 0
	for i := range r1 {
		lo := max(0, i-window)
		hi := min(len(r2), i+window+1)
		for j := lo; j < hi; j++ {
			if matched2[j] || r1[i] != r2[j] {
				continue
			}
			matched1[i] = true
			matched2[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0
	}

	// Count transpositions over the matched runes in order.
	transpositions := 0
	k := 0
	for i := range r1 {
		if !matched1[i] {
			continue
		}
		for !matched2[k] {
			k++
		}
		if r1[i] != r2[k] {
			transpositions++
		}
		k++
	}
	transpositions /= 2

	m := float64(matches)
	return (m/float64(len(r1)) + m/float64(len(r2)) + (m-float64(transpositions))/m) / 3
}

// JaroWinkler returns the Jaro similarity boosted for a shared prefix of up
// to four runes with a scaling factor of 0.1.
func JaroWinkler(s1, s2 string) float64 {
	j := Jaro(s1, s2)
	if j == 0 || j == 1 {
		return j
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	prefix := 0
	for i := 0; i < min(len(r1), len(r2)) && i < winklerMaxPrefix; i++ {
		if r1[i] != r2[i] {
			break
		}
		prefix++
	}

	return j + float64(prefix)*winklerScale*(1-j)
}
