package services

import (
	"testing"

	"pawgrove/internal/models"
)

func TestCanEdit(t *testing.T) {
	c := &models.Comment{UserID: 2}
	if !CanEdit(c, user(2, models.RoleUser)) {
		t.Error("Author cannot edit")
	}
	if CanEdit(c, user(3, models.RoleAdmin)) {
		t.Error("Admin can edit someone else's comment; editing is author-only")
	}
	if CanEdit(c, nil) {
		t.Error("Anonymous can edit")
	}
}

func TestCanDelete(t *testing.T) {
	c := &models.Comment{UserID: 2}
	const ownerID = 10
	cases := []struct {
		name  string
		actor *models.User
		want  bool
	}{
		{"author", user(2, models.RoleUser), true},
		{"moderator", user(7, models.RoleModerator), true},
		{"admin", user(7, models.RoleAdmin), true},
		{"context owner", user(ownerID, models.RoleUser), true},
		{"bystander", user(9, models.RoleUser), false},
		{"anonymous", nil, false},
	}
	for _, tc := range cases {
		if got := CanDelete(c, tc.actor, ownerID); got != tc.want {
			t.Errorf("CanDelete(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanModerate(t *testing.T) {
	const ownerID = 10
	cases := []struct {
		name  string
		actor *models.User
		want  bool
	}{
		{"moderator", user(7, models.RoleModerator), true},
		{"admin", user(7, models.RoleAdmin), true},
		{"context owner", user(ownerID, models.RoleUser), true},
		{"regular user", user(9, models.RoleUser), false},
		{"anonymous", nil, false},
	}
	for _, tc := range cases {
		if got := CanModerate(tc.actor, ownerID); got != tc.want {
			t.Errorf("CanModerate(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
