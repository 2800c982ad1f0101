package situational

import (
	"math"
	"testing"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

func TestRestAdvantageNilIsZero(t *testing.T) {
	if got := RestAdvantage(nil); got != 0 {
		t.Errorf("expected 0 without rest data, got %.2f", got)
	}
}

func TestRestAdvantageEqualRest(t *testing.T) {
	if got := RestAdvantage(&models.RestData{HomeDaysRest: 7, AwayDaysRest: 7}); got != 0 {
		t.Errorf("equal normal rest should be 0, got %.2f", got)
	}
}

func TestRestAdvantageHalfPointPerDay(t *testing.T) {
	got := RestAdvantage(&models.RestData{HomeDaysRest: 7, AwayDaysRest: 5})
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("two extra days should be +1.0, got %.2f", got)
	}
}

func TestRestAdvantageShortRestMismatch(t *testing.T) {
	// Away side on 3 days facing a rested home side: differential +2.0,
	// mismatch +1.0, short-week credit +0.8.
	got := RestAdvantage(&models.RestData{HomeDaysRest: 7, AwayDaysRest: 3})
	want := 4*0.5 + 1.0 + 0.8
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %.2f, got %.2f", want, got)
	}

	// Mirror image flips the sign.
	flipped := RestAdvantage(&models.RestData{HomeDaysRest: 3, AwayDaysRest: 7})
	if math.Abs(flipped+want) > 1e-9 {
		t.Errorf("expected %.2f, got %.2f", -want, flipped)
	}
}

func TestRestAdvantageMiniBye(t *testing.T) {
	// Thursday-game team on 10 days against a normal week.
	got := RestAdvantage(&models.RestData{HomeDaysRest: 10, AwayDaysRest: 7})
	want := 3*0.5 + 0.3
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %.2f, got %.2f", want, got)
	}
}

func TestRestAdvantageBothShort(t *testing.T) {
	// Both on a Thursday turnaround: no side gets the short-week credit.
	got := RestAdvantage(&models.RestData{HomeDaysRest: 4, AwayDaysRest: 4})
	if got != 0 {
		t.Errorf("expected 0 when both sides are equally short, got %.2f", got)
	}
}
