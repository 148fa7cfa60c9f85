package models

import "testing"

func votes(n int) []PollVote {
	out := make([]PollVote, n)
	for i := range out {
		out[i] = PollVote{UserID: uint(i + 1)}
	}
	return out
}

func TestPollPercentagesAllZeroWithoutVotes(t *testing.T) {
	poll := Poll{Options: []PollOption{
		{Text: "Saturday"},
		{Text: "Sunday"},
	}}

	if got := poll.TotalVotes(); got != 0 {
		t.Fatalf("TotalVotes = %d, want 0", got)
	}
	for i, pct := range poll.Percentages() {
		if pct != 0 {
			t.Fatalf("option %d percentage = %v, want 0", i, pct)
		}
	}
}

func TestPollPercentagesAreSharesOfTotal(t *testing.T) {
	poll := Poll{Options: []PollOption{
		{Text: "Saturday", Votes: votes(3)},
		{Text: "Sunday", Votes: votes(1)},
	}}

	if got := poll.TotalVotes(); got != 4 {
		t.Fatalf("TotalVotes = %d, want 4", got)
	}

	pcts := poll.Percentages()
	if len(pcts) != 2 {
		t.Fatalf("percentages = %d entries, want 2", len(pcts))
	}
	if pcts[0] != 75 || pcts[1] != 25 {
		t.Fatalf("percentages = %v, want [75 25]", pcts)
	}

	sum := 0.0
	for _, pct := range pcts {
		sum += pct
	}
	if sum != 100 {
		t.Fatalf("percentages sum = %v, want 100", sum)
	}
}

func TestPollPercentagesEmptyOptions(t *testing.T) {
	var poll Poll
	if got := poll.Percentages(); len(got) != 0 {
		t.Fatalf("percentages for optionless poll = %v, want empty", got)
	}
}
