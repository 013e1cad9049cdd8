package analyzer

import "testing"

func TestSentimentEstimateRanges(t *testing.T) {
	t.Parallel()

	est := NewSentimentEstimator()
	texts := []string{
		"This is absolutely wonderful, fantastic and amazing news for everyone!",
		"This is a horrible, disgusting disaster and everyone responsible should be ashamed.",
		"The committee met at noon and reviewed the quarterly figures.",
	}
	for _, text := range texts {
		res := est.Estimate(text)
		if res.Polarity < -1 || res.Polarity > 1 {
			t.Fatalf("polarity out of range for %q: %f", text, res.Polarity)
		}
		if res.Subjectivity < 0 || res.Subjectivity > 1 {
			t.Fatalf("subjectivity out of range for %q: %f", text, res.Subjectivity)
		}
	}
}

func TestSentimentEstimateEmptyText(t *testing.T) {
	t.Parallel()

	est := NewSentimentEstimator()
	res := est.Estimate("   ")

	if res.Polarity != 0 || res.Subjectivity != 0 {
		t.Fatalf("expected neutral zero estimate for blank text, got %+v", res)
	}
}

func TestSentimentEstimateDeterministic(t *testing.T) {
	t.Parallel()

	est := NewSentimentEstimator()
	text := "An outrageous scandal shocked the entire nation yesterday."

	first := est.Estimate(text)
	for i := 0; i < 3; i++ {
		if next := est.Estimate(text); next != first {
			t.Fatalf("estimate changed between runs: %+v vs %+v", next, first)
		}
	}
}

func TestSentimentEstimatePolaritySigns(t *testing.T) {
	t.Parallel()

	est := NewSentimentEstimator()

	positive := est.Estimate("What a wonderful, delightful and happy celebration this is!")
	negative := est.Estimate("A terrible, horrific tragedy ruined everything and everyone is devastated.")

	if positive.Polarity <= 0 {
		t.Fatalf("expected positive polarity, got %f", positive.Polarity)
	}
	if negative.Polarity >= 0 {
		t.Fatalf("expected negative polarity, got %f", negative.Polarity)
	}
}
