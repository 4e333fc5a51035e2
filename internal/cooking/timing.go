package cooking

import "github.com/opencode-ai/blockseq/internal/models"

// facts holds the positions and interval sums a rule may inspect. Indexes
// are first occurrences, -1 when absent.
type facts struct {
	seq models.Sequence

	water, fire, noodle, soup, off int

	// cook is wait time between the noodles and turning the fire off (or
	// the end of the sequence).
	cook int
	// boil is wait time between the later of water/fire and the noodles.
	boil int
	// wasted is wait time before the water, between water and fire, and
	// after the fire is turned off.
	wasted int
	// preSoup is wait time between the noodles and the soup.
	preSoup int
}

func newFacts(seq models.Sequence) facts {
	f := facts{
		seq:    seq,
		water:  seq.Index(AddWater),
		fire:   seq.Index(LightFire),
		noodle: seq.Index(AddNoodle),
		soup:   seq.Index(AddSoup),
		off:    seq.Index(ExtinguishFire),
	}

	if f.noodle >= 0 {
		cookEnd := seq.Len()
		if f.off >= 0 {
			cookEnd = f.off
		}
		f.cook = waitSecondsBetween(seq, f.noodle, cookEnd)
		f.boil = waitSecondsBetween(seq, max(f.water, f.fire), f.noodle)
	}

	if f.water >= 0 {
		f.wasted += waitSecondsBetween(seq, -1, f.water)
		if f.fire >= 0 && f.water < f.fire {
			f.wasted += waitSecondsBetween(seq, f.water, f.fire)
		}
	}
	if f.off >= 0 {
		f.wasted += waitSecondsBetween(seq, f.off, seq.Len())
	}

	if f.noodle >= 0 && f.soup >= 0 {
		f.preSoup = waitSecondsBetween(seq, f.noodle, f.soup)
	}

	return f
}

func (f facts) has(i int) bool {
	return i >= 0
}

// waitSecondsBetween sums the effective duration of wait actions at
// positions strictly between lo and hi.
func waitSecondsBetween(seq models.Sequence, lo, hi int) int {
	total := 0
	for i := max(lo+1, 0); i < hi && i < seq.Len(); i++ {
		if a := seq.At(i); a.Kind == Wait {
			total += a.Seconds()
		}
	}
	return total
}

// CookSeconds returns the wait time the noodles spend over the fire.
func CookSeconds(seq models.Sequence) int {
	return newFacts(seq).cook
}

// WastedSeconds returns wait time spent outside the boil and cook intervals.
func WastedSeconds(seq models.Sequence) int {
	return newFacts(seq).wasted
}
