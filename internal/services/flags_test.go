package services

import (
	"testing"

	"pawgrove/internal/models"
)

func TestApplyFlagReplacesEarlierReport(t *testing.T) {
	c := &models.Comment{}

	ApplyFlag(c, 1, "spam", "")
	ApplyFlag(c, 1, "harassment", "keeps at it")
	ApplyFlag(c, 1, "offtopic", "")

	count := 0
	var last models.FlagEntry
	for _, f := range c.Flags {
		if f.UserID == 1 {
			count++
			last = f
		}
	}
	if count != 1 {
		t.Fatalf("User has %d flag entries, want 1", count)
	}
	if last.Reason != "offtopic" || last.Message != "" {
		t.Errorf("Entry does not reflect the last call: %+v", last)
	}
}

func TestApplyFlagReplacementRefreshesTimestamp(t *testing.T) {
	c := &models.Comment{}
	ApplyFlag(c, 1, "spam", "")
	first := c.Flags[0].FlaggedAt
	ApplyFlag(c, 1, "spam", "again")
	if c.Flags[0].FlaggedAt.Before(first) {
		t.Error("Replacement kept a stale FlaggedAt")
	}
	if c.Flags[0].Message != "again" {
		t.Error("Replacement did not carry the new message")
	}
}

func TestApplyFlagCountsDistinctUsers(t *testing.T) {
	c := &models.Comment{}
	ApplyFlag(c, 1, "spam", "")
	ApplyFlag(c, 2, "harassment", "")
	ApplyFlag(c, 1, "other", "")
	if len(c.Flags) != 2 {
		t.Errorf("Flag count = %d, want 2", len(c.Flags))
	}
}
