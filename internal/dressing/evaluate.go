package dressing

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/rules"
)

// Check names, in reporting order.
const (
	CheckDistraction       = "distraction"
	CheckShoesBeforeSocks  = "shoes_before_socks"
	CheckRaincoatBeforeBag = "raincoat_before_bag"
	CheckSocksWithoutShoes = "socks_without_shoes"
	CheckNoRaincoat        = "no_raincoat"
	CheckBareFeet          = "bare_feet"
	CheckShoesWithoutSocks = "shoes_without_socks"
	CheckNoBag             = "no_bag"
)

// Violation messages with fixed wording.
const (
	MsgSocksWet          = "Your socks got soaked in the muddy water. 🧦"
	MsgBagWet            = "Your bag got wet in the rain. 🎒"
	MsgSocksWithoutShoes = "You didn't wear shoes, so your socks got wet and dirty. 🧦"
	MsgNoRaincoat        = "You didn't wear a raincoat, so you got soaked. 🌧️"
	MsgBareFeet          = "You went barefoot and your feet got soaked. 🦶"
	MsgShoesWithoutSocks = "You didn't wear socks, so your shoes feel sticky and uncomfortable. 🥿"
	MsgNoBag             = "You didn't take your bag, so you forgot your school things. 🎒"
)

type attire struct {
	seq                         models.Sequence
	socks, shoes, bag, raincoat int
	distractions                []string
}

func newAttire(seq models.Sequence) attire {
	return attire{
		seq:          seq,
		socks:        seq.Index(PutOnSocks),
		shoes:        seq.Index(PutOnShoes),
		bag:          seq.Index(WearBag),
		raincoat:     seq.Index(WearRaincoat),
		distractions: distractionNames(seq),
	}
}

func (a attire) has(i int) bool {
	return i >= 0
}

var checklist = rules.NewChecklist(
	rules.Check[attire]{
		Name:    CheckDistraction,
		When:    func(a attire) bool { return len(a.distractions) > 0 },
		Message: distractionMessage,
	},
	rules.Check[attire]{
		Name:    CheckShoesBeforeSocks,
		When:    func(a attire) bool { return a.has(a.shoes) && a.has(a.socks) && a.shoes < a.socks },
		Message: fixed(MsgSocksWet),
	},
	rules.Check[attire]{
		Name:    CheckRaincoatBeforeBag,
		When:    func(a attire) bool { return a.has(a.raincoat) && a.has(a.bag) && a.raincoat < a.bag },
		Message: fixed(MsgBagWet),
	},
	rules.Check[attire]{
		Name:    CheckSocksWithoutShoes,
		When:    func(a attire) bool { return a.has(a.socks) && !a.has(a.shoes) },
		Message: fixed(MsgSocksWithoutShoes),
	},
	rules.Check[attire]{
		Name:    CheckNoRaincoat,
		When:    func(a attire) bool { return !a.has(a.raincoat) },
		Message: fixed(MsgNoRaincoat),
	},
	rules.Check[attire]{
		Name:    CheckBareFeet,
		When:    func(a attire) bool { return !a.has(a.socks) && !a.has(a.shoes) },
		Message: fixed(MsgBareFeet),
	},
	rules.Check[attire]{
		Name:    CheckShoesWithoutSocks,
		When:    func(a attire) bool { return !a.has(a.socks) && a.has(a.shoes) },
		Message: fixed(MsgShoesWithoutSocks),
	},
	rules.Check[attire]{
		Name:    CheckNoBag,
		When:    func(a attire) bool { return !a.has(a.bag) },
		Message: fixed(MsgNoBag),
	},
)

// Evaluate runs every check and collects the violations in order. The
// sequence succeeds only when none apply.
func Evaluate(seq models.Sequence) models.Outcome {
	violations := checklist.Collect(newAttire(seq))
	if len(violations) == 0 {
		return models.Outcome{
			Ruleset:     Name,
			Success:     true,
			Variant:     VariantSuccess,
			Message:     "🎉 Ready for school!",
			Description: "You got ready perfectly and made it to school nice and dry!",
			Emoji:       "🎉",
		}
	}
	return models.Outcome{
		Ruleset:     Name,
		Success:     false,
		Variant:     VariantFailure,
		Message:     "😢 Oh no!",
		Description: "Something went wrong getting ready for school.",
		Emoji:       "😢",
		Violations:  violations,
	}
}

// CheckNames lists the checks in reporting order.
func CheckNames() []string {
	return checklist.Names()
}

// distractionNames returns the display text of each distinct distraction
// in order of first appearance.
func distractionNames(seq models.Sequence) []string {
	v := Vocabulary()
	var names []string
	seen := make(map[models.ActionKind]bool)
	for _, a := range seq.Actions() {
		entry, known := v.Lookup(a.Kind)
		if !a.Distraction && !(known && entry.Distraction) {
			continue
		}
		if seen[a.Kind] {
			continue
		}
		seen[a.Kind] = true
		name := string(a.Kind)
		if known {
			name = entry.Text
		}
		names = append(names, name)
	}
	return names
}

func distractionMessage(a attire) string {
	names := strings.Join(a.distractions, ", ")
	if len(a.distractions) == 1 {
		return fmt.Sprintf("%s made you late for school! ⏰", names)
	}
	return fmt.Sprintf("%s made you very late for school! ⏰", names)
}

func fixed(msg string) func(attire) string {
	return func(attire) string { return msg }
}
