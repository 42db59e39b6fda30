package services

import (
	"errors"
	"testing"

	"pawgrove/internal/models"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from, to models.CommentStatus
		want     bool
	}{
		{models.StatusPending, models.StatusPublished, true},
		{models.StatusPending, models.StatusHidden, true},
		{models.StatusPublished, models.StatusHidden, true},
		{models.StatusHidden, models.StatusPublished, true},
		{models.StatusPublished, models.StatusPending, false},
		{models.StatusHidden, models.StatusPending, false},
		{models.StatusPublished, models.StatusPublished, false},
		{models.StatusHidden, models.StatusHidden, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestModerateRecordsAudit(t *testing.T) {
	c := &models.Comment{Status: models.StatusPublished}
	mod := user(7, models.RoleModerator)

	if err := Moderate(c, mod, 10, models.StatusHidden, "pile-on thread", false); err != nil {
		t.Fatalf("Moderate failed: %v", err)
	}
	if c.Status != models.StatusHidden {
		t.Errorf("Status = %s, want hidden", c.Status)
	}
	if c.Moderation == nil {
		t.Fatal("No audit record")
	}
	if c.Moderation.ModeratorID != 7 || c.Moderation.Status != models.StatusHidden || c.Moderation.Note != "pile-on thread" {
		t.Errorf("Audit record wrong: %+v", c.Moderation)
	}
	if c.Moderation.UpdatedAt.IsZero() {
		t.Error("Audit UpdatedAt not set")
	}
}

func TestModerateOverwritesPriorAudit(t *testing.T) {
	c := &models.Comment{Status: models.StatusPublished}
	if err := Moderate(c, user(7, models.RoleModerator), 10, models.StatusHidden, "first", false); err != nil {
		t.Fatal(err)
	}
	if err := Moderate(c, user(8, models.RoleAdmin), 10, models.StatusPublished, "second", false); err != nil {
		t.Fatal(err)
	}
	if c.Moderation.ModeratorID != 8 || c.Moderation.Note != "second" {
		t.Errorf("Prior audit not overwritten: %+v", c.Moderation)
	}
}

func TestModerateRoundTripFlagClearing(t *testing.T) {
	// published → hidden → published with clearFlags on the second step.
	c := &models.Comment{Status: models.StatusPublished}
	ApplyFlag(c, 1, "spam", "")
	ApplyFlag(c, 2, "harassment", "")
	mod := user(7, models.RoleModerator)

	if err := Moderate(c, mod, 10, models.StatusHidden, "", false); err != nil {
		t.Fatal(err)
	}
	if len(c.Flags) != 2 {
		t.Errorf("Flags changed without clearFlags: %d", len(c.Flags))
	}
	if err := Moderate(c, mod, 10, models.StatusPublished, "", true); err != nil {
		t.Fatal(err)
	}
	if len(c.Flags) != 0 {
		t.Errorf("clearFlags left %d flags", len(c.Flags))
	}
}

func TestModerateWithoutClearKeepsFlags(t *testing.T) {
	c := &models.Comment{Status: models.StatusHidden}
	ApplyFlag(c, 1, "spam", "")
	if err := Moderate(c, user(7, models.RoleAdmin), 10, models.StatusPublished, "", false); err != nil {
		t.Fatal(err)
	}
	if len(c.Flags) != 1 || c.Flags[0].Reason != "spam" {
		t.Error("Flags should be untouched when clearing is not requested")
	}
}

func TestModerateAuthorization(t *testing.T) {
	cases := []struct {
		name  string
		actor *models.User
		want  error
	}{
		{"moderator", user(7, models.RoleModerator), nil},
		{"admin", user(7, models.RoleAdmin), nil},
		{"context owner", user(10, models.RoleUser), nil},
		{"author", user(2, models.RoleUser), ErrUnauthorized},
		{"bystander", user(9, models.RoleUser), ErrUnauthorized},
		{"nobody", nil, ErrUnauthorized},
	}
	for _, tc := range cases {
		c := &models.Comment{UserID: 2, Status: models.StatusPublished}
		err := Moderate(c, tc.actor, 10, models.StatusHidden, "", false)
		if !errors.Is(err, tc.want) && !(err == nil && tc.want == nil) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestModerateRejectsBadTransition(t *testing.T) {
	c := &models.Comment{Status: models.StatusHidden}
	err := Moderate(c, user(7, models.RoleAdmin), 10, models.StatusHidden, "", true)
	if !errors.Is(err, ErrBadTransition) {
		t.Fatalf("Expected ErrBadTransition, got %v", err)
	}
	if c.Moderation != nil {
		t.Error("Rejected transition still wrote an audit record")
	}
}

func TestQuickApprove(t *testing.T) {
	c := &models.Comment{Status: models.StatusPending}
	if err := QuickApprove(c, user(10, models.RoleUser), 10); err != nil {
		t.Fatalf("QuickApprove by owner failed: %v", err)
	}
	if c.Status != models.StatusPublished {
		t.Errorf("Status = %s, want published", c.Status)
	}
	if c.Moderation != nil {
		t.Error("Quick approve should not leave an audit record")
	}
}

func TestQuickApproveOnlyFromPending(t *testing.T) {
	c := &models.Comment{Status: models.StatusPublished}
	if err := QuickApprove(c, user(7, models.RoleAdmin), 10); !errors.Is(err, ErrBadTransition) {
		t.Errorf("Expected ErrBadTransition, got %v", err)
	}
}

func TestQuickApproveAuthorCannotSelfApprove(t *testing.T) {
	c := &models.Comment{UserID: 2, Status: models.StatusPending}
	if err := QuickApprove(c, user(2, models.RoleUser), 10); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized, got %v", err)
	}
}
