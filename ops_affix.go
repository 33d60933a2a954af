package stringv

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// LongestCommonPrefix returns the longest prefix shared by s and other,
// compared codepoint by codepoint.
func (s String) LongestCommonPrefix(other String) String {
	a, b := []rune(s.text), []rune(other.text)
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return s.derive(string(a[:i]))
}

// LongestCommonSuffix returns the longest suffix shared by s and other,
// compared codepoint by codepoint from the back.
func (s String) LongestCommonSuffix(other String) String {
	a, b := []rune(s.text), []rune(other.text)
	n := min(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return s.derive(string(a[len(a)-i:]))
}

// LongestCommonSubstring returns the longest contiguous codepoint run shared
// by s and other, as a substring of s.
//
// Classic dynamic programming over a (len(s)+1) × (len(other)+1) table of
// match-run lengths; O(n·m) time and space, acceptable for value-sized
// inputs but not for bulk text. On ties the run ending earliest in s wins:
// the scan is row-major and only a strictly longer run replaces the current
// best. Either input being empty yields the empty value.
func (s String) LongestCommonSubstring(other String) String {
	a, b := []rune(s.text), []rune(other.text)
	if len(a) == 0 || len(b) == 0 {
		return s.derive("")
	}
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	best, bestEnd := 0, 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
				if table[i][j] > best {
					best = table[i][j]
					bestEnd = i
				}
			}
		}
	}
	return s.derive(string(a[bestEnd-best : bestEnd]))
}
