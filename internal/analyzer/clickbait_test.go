package analyzer

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyzeClickbaitSensationalTitle(t *testing.T) {
	t.Parallel()

	res := AnalyzeClickbait("You WON'T BELIEVE What Happened Next!!!")

	if res.Score <= 50 {
		t.Fatalf("expected score > 50 for a loaded title, got %d", res.Score)
	}

	var punctuation, caps bool
	for _, ind := range res.Indicators {
		if strings.Contains(ind, "exclamation") {
			punctuation = true
		}
		if strings.Contains(ind, "capitalization") {
			caps = true
		}
	}
	if !punctuation {
		t.Fatalf("expected an excessive-punctuation indicator, got %v", res.Indicators)
	}
	if !caps {
		t.Fatalf("expected an all-caps indicator, got %v", res.Indicators)
	}
}

func TestAnalyzeClickbaitNeutralTitle(t *testing.T) {
	t.Parallel()

	res := AnalyzeClickbait("Central bank holds interest rates steady amid inflation concerns")

	if res.Score != 0 {
		t.Fatalf("expected score 0 for a neutral headline, got %d (%v)", res.Score, res.Indicators)
	}
	if len(res.Indicators) != 0 {
		t.Fatalf("expected no indicators, got %v", res.Indicators)
	}
}

func TestAnalyzeClickbaitListicle(t *testing.T) {
	t.Parallel()

	res := AnalyzeClickbait("7 Reasons Your Diet Is Failing, According To Science")

	found := false
	for _, ind := range res.Indicators {
		if strings.Contains(ind, "listicle") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a listicle indicator, got %v", res.Indicators)
	}
}

func TestAnalyzeClickbaitPhraseNamesMatch(t *testing.T) {
	t.Parallel()

	res := AnalyzeClickbait("The Truth About Vaccines Revealed By One Brave Doctor")

	found := false
	for _, ind := range res.Indicators {
		if strings.Contains(ind, "the truth about") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the matched phrase in the indicator, got %v", res.Indicators)
	}
}

func TestAnalyzeClickbaitEmptyTitle(t *testing.T) {
	t.Parallel()

	res := AnalyzeClickbait("")

	if res.Score != 0 {
		t.Fatalf("expected score 0 for an empty title, got %d", res.Score)
	}
	if len(res.Indicators) != 0 {
		t.Fatalf("expected no indicators for an empty title, got %v", res.Indicators)
	}
}

func TestAnalyzeClickbaitStableOutput(t *testing.T) {
	t.Parallel()

	title := "SHOCKING: You Won't Believe These 10 Tricks?!!"
	first := AnalyzeClickbait(title)
	for i := 0; i < 5; i++ {
		if next := AnalyzeClickbait(title); !reflect.DeepEqual(next, first) {
			t.Fatalf("unstable output on run %d: %+v vs %+v", i, next, first)
		}
	}
}

func TestAnalyzeClickbaitScoreClamped(t *testing.T) {
	t.Parallel()

	// Every rule triggered at once must still land inside [0,100].
	res := AnalyzeClickbait("SHOCKING!! 10 TRICKS DOCTORS HATE, YOU WON'T BELIEVE WHAT HAPPENED NEXT? THE TRUTH ABOUT A MIND-BLOWING SECRET THEY DON'T WANT YOU TO KNOW ABOUT AT ALL!!")

	if res.Score < 0 || res.Score > 100 {
		t.Fatalf("score out of range: %d", res.Score)
	}
}
