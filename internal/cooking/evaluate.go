package cooking

import (
	"fmt"

	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/rules"
)

// Rule names, in priority order.
const (
	RuleEmpty            = "empty"
	RuleMissingWater     = "missing_water"
	RuleMissingFire      = "missing_fire"
	RuleMissingNoodle    = "missing_noodle"
	RuleMissingSoup      = "missing_soup"
	RuleFireBeforeWater  = "fire_before_water"
	RuleNoodleBeforeFire = "noodle_before_fire"
	RuleOffBeforeNoodle  = "off_before_noodle"
	RuleWastedWait       = "wasted_wait"
	RuleBoilSkipped      = "boil_skipped"
	RuleVeryUndercooked  = "very_undercooked"
	RuleUndercooked      = "undercooked"
	RuleOvercooked       = "overcooked"
	RuleLateSoup         = "late_soup"
	RuleSoupAfterFireOff = "soup_after_fire_off"
)

var chain = rules.NewChain(perfect,
	rules.Rule[facts, models.Outcome]{
		Name: RuleEmpty,
		When: func(f facts) bool { return f.seq.IsEmpty() },
		Build: func(facts) models.Outcome {
			return failure(VariantEmpty, "🍜 You didn't make any ramen!",
				"Put some blocks together and cook your ramen!", "🤔")
		},
	},
	rules.Rule[facts, models.Outcome]{
		Name: RuleMissingWater,
		When: func(f facts) bool { return !f.has(f.water) },
		Build: func(facts) models.Outcome {
			return failure(VariantMissingWater, "💧 There's no water!",
				"You can't cook ramen without water!", "😰")
		},
	},
	rules.Rule[facts, models.Outcome]{
		Name: RuleMissingFire,
		When: func(f facts) bool { return !f.has(f.fire) },
		Build: func(facts) models.Outcome {
			return failure(VariantColdStart, "❄️ Cold ramen!",
				"You never lit the fire, so the noodles just soaked in cold water!", "🥶")
		},
	},
	rules.Rule[facts, models.Outcome]{
		Name: RuleMissingNoodle,
		When: func(f facts) bool { return !f.has(f.noodle) },
		Build: func(facts) models.Outcome {
			return failure(VariantNoNoodle, "🥤 It's just soup water!",
				"Without noodles it isn't ramen, it's just soup water!", "😅")
		},
	},
	rules.Rule[facts, models.Outcome]{
		Name: RuleMissingSoup,
		When: func(f facts) bool { return !f.has(f.soup) },
		Build: func(facts) models.Outcome {
			return failure(VariantNoSoup, "😐 Unseasoned ramen!",
				"You forgot the soup base, so it has no flavor!", "🙁")
		},
	},
	rules.Rule[facts, models.Outcome]{
		Name: RuleFireBeforeWater,
		When: func(f facts) bool { return f.fire < f.water },
		Build: func(facts) models.Outcome {
			return failure(VariantBurned, "🔥 The pot burned!",
				"You lit the fire before adding water, so the pot burned!", "💥")
		},
	},
	rules.Rule[facts, models.Outcome]{
		Name: RuleNoodleBeforeFire,
		When: func(f facts) bool { return f.noodle < f.fire },
		Build: func(facts) models.Outcome {
			return failure(VariantColdStart, "🥶 Cold noodles!",
				"You added the noodles before lighting the fire, so they are hard and cold!", "🥶")
		},
	},
	rules.Rule[facts, models.Outcome]{
		Name: RuleOffBeforeNoodle,
		When: func(f facts) bool { return f.has(f.off) && f.off < f.noodle },
		Build: func(facts) models.Outcome {
			return failure(VariantColdStart, "❄️ You turned off the fire too early!",
				"You turned off the fire before adding the noodles, so the ramen went cold!", "🥶")
		},
	},
	rules.Rule[facts, models.Outcome]{
		Name: RuleWastedWait,
		When: func(f facts) bool { return f.wasted > 0 },
		Build: func(f facts) models.Outcome {
			return failure(VariantUselessWait, "⏰ You waited for nothing!",
				fmt.Sprintf("You waited %d seconds at a moment that had nothing to do with cooking! "+
					"Only wait while the water boils or the noodles cook!", f.wasted), "😅")
		},
	},
	rules.Rule[facts, models.Outcome]{
		Name: RuleBoilSkipped,
		When: func(f facts) bool { return f.boil == 0 && f.cook == TargetCookSeconds },
		Build: func(facts) models.Outcome {
			return success(VariantImperfectBoilSkip, "🍜 Ramen is ready!",
				"The ramen is done! But... the noodles went in before the water boiled. "+
					"There's a tastier way to make it!", "🍜")
		},
	},
	rules.Rule[facts, models.Outcome]{
		Name: RuleVeryUndercooked,
		When: func(f facts) bool { return f.cook < TargetCookSeconds && f.cook <= VeryUndercookedCutoff },
		Build: func(f facts) models.Outcome {
			return undercooked(VariantVeryUndercooked, f.cook)
		},
	},
	rules.Rule[facts, models.Outcome]{
		Name: RuleUndercooked,
		When: func(f facts) bool { return f.cook < TargetCookSeconds },
		Build: func(f facts) models.Outcome {
			return undercooked(VariantUndercooked, f.cook)
		},
	},
	rules.Rule[facts, models.Outcome]{
		Name: RuleOvercooked,
		When: func(f facts) bool { return f.cook > TargetCookSeconds },
		Build: func(f facts) models.Outcome {
			extra := f.cook - TargetCookSeconds
			out := failure(VariantOvercooked, "😭 The noodles went soggy!",
				fmt.Sprintf("You boiled the noodles for %d seconds! That's %d seconds too long, so they got soggy!", f.cook, extra), "💦")
			out.Timing = &models.CookTiming{CookedSeconds: f.cook, ExtraSeconds: extra}
			return out
		},
	},
	rules.Rule[facts, models.Outcome]{
		Name: RuleLateSoup,
		When: func(f facts) bool {
			return f.preSoup >= TargetCookSeconds && f.has(f.off) && f.soup < f.off
		},
		Build: func(facts) models.Outcome {
			return success(VariantLateSoup, "🍜 Ramen is ready!",
				"The ramen is done! But... the soup base clumped up and the flavor never soaked into the noodles!", "🍜")
		},
	},
	rules.Rule[facts, models.Outcome]{
		Name: RuleSoupAfterFireOff,
		When: func(f facts) bool { return f.has(f.off) && f.soup > f.off },
		Build: func(facts) models.Outcome {
			return failure(VariantSoupAfterOff, "🧊 Cold soup!",
				"You added the soup base after turning off the fire, so it never dissolved! Add it while it's hot!", "❄️")
		},
	},
)

// Evaluate classifies a cooking sequence. It is total and deterministic:
// every sequence, including the empty one, maps to exactly one variant.
func Evaluate(seq models.Sequence) models.Outcome {
	out, _ := chain.Evaluate(newFacts(seq))
	return out
}

// Explain is Evaluate that also reports which rule fired. The rule name is
// empty when no rule matched and the result is perfect.
func Explain(seq models.Sequence) (models.Outcome, string) {
	return chain.Evaluate(newFacts(seq))
}

// RuleNames lists the rule chain in priority order.
func RuleNames() []string {
	return chain.Names()
}

func perfect(facts) models.Outcome {
	return success(VariantPerfect, "🎉 Perfect ramen!",
		"Delicious ramen! You cooked it for exactly 3 minutes!", "🍜")
}

func undercooked(variant models.Variant, cooked int) models.Outcome {
	remaining := TargetCookSeconds - cooked
	out := failure(variant, "😣 The noodles are undercooked!",
		fmt.Sprintf("You only boiled the noodles for %d seconds! They needed %d more seconds. They're hard!", cooked, remaining), "😖")
	out.Timing = &models.CookTiming{CookedSeconds: cooked, RemainingSeconds: remaining}
	return out
}

func failure(variant models.Variant, message, description, emoji string) models.Outcome {
	return models.Outcome{
		Ruleset:     Name,
		Success:     false,
		Variant:     variant,
		Message:     message,
		Description: description,
		Emoji:       emoji,
	}
}

func success(variant models.Variant, message, description, emoji string) models.Outcome {
	out := failure(variant, message, description, emoji)
	out.Success = true
	return out
}
