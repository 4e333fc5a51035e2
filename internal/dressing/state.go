package dressing

import (
	"strings"

	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/replay"
)

// FootState describes what is on the feet, including layering order.
type FootState string

// Foot states.
const (
	FootBare       FootState = "bare"
	FootSocks      FootState = "socks"
	FootShoes      FootState = "shoes"
	FootSocksShoes FootState = "socks_shoes"
	FootShoesSocks FootState = "shoes_socks"
)

// FootStates lists every foot state.
var FootStates = []FootState{FootBare, FootSocks, FootShoes, FootSocksShoes, FootShoesSocks}

// BodyState describes what is worn on the body, including layering order.
type BodyState string

// Body states.
const (
	BodyBare        BodyState = "bare"
	BodyBag         BodyState = "bag"
	BodyRaincoat    BodyState = "raincoat"
	BodyBagRaincoat BodyState = "bag_raincoat"
	BodyRaincoatBag BodyState = "raincoat_bag"
)

// BodyStates lists every body state.
var BodyStates = []BodyState{BodyBare, BodyBag, BodyRaincoat, BodyBagRaincoat, BodyRaincoatBag}

// StateBase is the composite state with nothing worn.
const StateBase models.VisualState = "base"

// ClassifyFeet derives the foot state from the presence and order of socks
// and shoes.
func ClassifyFeet(prefix models.Sequence) FootState {
	return FootState(layer(prefix, PutOnSocks, PutOnShoes, string(FootSocks), string(FootShoes)))
}

// ClassifyBody derives the body state from the presence and order of the
// bag and raincoat.
func ClassifyBody(prefix models.Sequence) BodyState {
	return BodyState(layer(prefix, WearBag, WearRaincoat, string(BodyBag), string(BodyRaincoat)))
}

func layer(prefix models.Sequence, first, second models.ActionKind, firstName, secondName string) string {
	i, j := prefix.Index(first), prefix.Index(second)
	switch {
	case i >= 0 && j < 0:
		return firstName
	case i < 0 && j >= 0:
		return secondName
	case i >= 0 && j >= 0 && i < j:
		return firstName + "_" + secondName
	case i >= 0 && j >= 0:
		return secondName + "_" + firstName
	default:
		return "bare"
	}
}

// CompositeState combines body and foot state, body first, skipping bare
// parts. Nothing worn yields StateBase.
func CompositeState(body BodyState, foot FootState) models.VisualState {
	var parts []string
	if body != BodyBare && body != "" {
		parts = append(parts, string(body))
	}
	if foot != FootBare && foot != "" {
		parts = append(parts, string(foot))
	}
	if len(parts) == 0 {
		return StateBase
	}
	return models.VisualState(strings.Join(parts, "_"))
}

// States lists all 25 composite states, body-major.
func States() []models.VisualState {
	states := make([]models.VisualState, 0, len(BodyStates)*len(FootStates))
	for _, body := range BodyStates {
		for _, foot := range FootStates {
			states = append(states, CompositeState(body, foot))
		}
	}
	return states
}

// ClassifyState returns the composite attire state of a prefix.
func ClassifyState(prefix models.Sequence) models.VisualState {
	return CompositeState(ClassifyBody(prefix), ClassifyFeet(prefix))
}

// Caption renders a composite state for display, e.g. "bag + raincoat + socks".
func Caption(state models.VisualState) string {
	if state == StateBase || state == "" {
		return string(StateBase)
	}
	return strings.ReplaceAll(string(state), "_", " + ")
}

// BuildReplayFrames returns one frame per attire block. Distractions do
// not change the picture and are skipped.
func BuildReplayFrames(seq models.Sequence) []models.ReplayFrame {
	v := Vocabulary()
	return replay.Build(seq, func(a models.Action) bool { return v.IsVisible(a.Kind) }, ClassifyState)
}
