package helpers

import (
	"strings"
	"unicode/utf8"
)

// This suggests a known flag for a misspelled one. It catches one missing,
// extra, or replaced character as well as two swapped neighbors. Anything
// after an "=" is ignored, so "--outfle=x.js" still matches "--outfile".
type TypoDetector struct {
	valid        map[string]bool
	oneCharTypos map[string]string
}

func MakeTypoDetector(valid []string) TypoDetector {
	detector := TypoDetector{
		valid:        make(map[string]bool),
		oneCharTypos: make(map[string]string),
	}

	// Add all combinations of each valid word with one character missing
	for _, correct := range valid {
		detector.valid[correct] = true
		if len(correct) > 3 {
			for i, ch := range correct {
				detector.oneCharTypos[correct[:i]+correct[i+utf8.RuneLen(ch):]] = correct
			}
		}
	}

	return detector
}

func (detector TypoDetector) MaybeCorrectTypo(typo string) (string, bool) {
	if equals := strings.IndexByte(typo, '='); equals != -1 {
		typo = typo[:equals]
	}
	if detector.valid[typo] {
		return "", false
	}

	// Check for a single deleted character
	if corrected, ok := detector.oneCharTypos[typo]; ok {
		return corrected, true
	}

	// Check for a single inserted or replaced character
	for i, ch := range typo {
		if corrected, ok := detector.oneCharTypos[typo[:i]+typo[i+utf8.RuneLen(ch):]]; ok {
			return corrected, true
		}
	}

	// Check for two swapped characters
	for i := 0; i+1 < len(typo); i++ {
		swapped := typo[:i] + typo[i+1:i+2] + typo[i:i+1] + typo[i+2:]
		if detector.valid[swapped] {
			return swapped, true
		}
	}

	return "", false
}
