// Package generator fills the wedding hashtag and signature drink templates
package generator

import (
	"errors"
	"strings"
	"unicode"
)

// ErrNamesRequired is returned when either name has no letters left after cleaning
var ErrNamesRequired = errors.New("generator: both names are required")

type Vibe string

const (
	VibeClassic Vibe = "classic"
	VibeFun     Vibe = "fun"
	VibeFilmy   Vibe = "filmy"
	VibeMinimal Vibe = "minimal"
)

// HashtagSet groups suggestions the way the tool page shows them
type HashtagSet struct {
	Elegant []string `json:"elegant"`
	Playful []string `json:"playful"`
	Short   []string `json:"short"`
	Themed  []string `json:"themed"`
}

// All flattens the groups in display order
func (h HashtagSet) All() []string {
	out := make([]string, 0, len(h.Elegant)+len(h.Playful)+len(h.Short)+len(h.Themed))
	out = append(out, h.Elegant...)
	out = append(out, h.Playful...)
	out = append(out, h.Short...)
	return append(out, h.Themed...)
}

// Hashtags builds couple hashtags from two names. Only ASCII letters of each name are kept.
func Hashtags(name1, name2 string, vibe Vibe) (HashtagSet, error) {
	n1, n2 := lettersOnly(name1), lettersOnly(name2)
	if n1 == "" || n2 == "" {
		return HashtagSet{}, ErrNamesRequired
	}
	combo := n1 + n2

	set := HashtagSet{
		Elegant: []string{
			"#" + combo + "Forever",
			"#The" + combo + "Wedding",
			"#" + n1 + "And" + n2,
			"#" + combo + "SayIDo",
			"#TogetherForever" + combo,
			"#Celebrating" + combo,
			"#" + combo + "LoveStory",
			"#" + combo + "Chapter",
		},
		Playful: []string{
			"#Finally" + combo,
			"#" + combo + "Hitched",
			"#" + n1 + "Got" + n2,
			"#" + combo + "Party",
			"#" + combo + "Vibes",
			"#" + n1 + "Says" + n2 + "Yes",
			"#" + combo + "Goals",
			"#Cheers" + combo,
		},
		Short: []string{
			"#" + combo,
			"#" + n1 + "Weds" + n2,
			"#" + n1 + n2[:1],
			"#We" + combo,
			"#" + combo + "25",
		},
	}
	if vibe == VibeFilmy {
		set.Themed = []string{
			"#Dilwale" + n1 + "Le" + n2,
			"#" + combo + "KiShaadi",
			"#BandBaajaBaraat" + combo,
			"#DDLJ" + combo,
		}
	} else {
		set.Themed = []string{
			"#" + combo + "Signature",
			"#House" + combo,
			"#" + combo + "Affair",
			"#" + combo + "Union",
		}
	}
	return set, nil
}

func lettersOnly(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
