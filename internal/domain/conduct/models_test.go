package conduct

import (
	"testing"

	"hrms/internal/domain/authz"
)

func TestCategoryKind(t *testing.T) {
	cases := []struct {
		category Category
		kind     authz.Kind
	}{
		{CategoryDiscipline, authz.KindDiscipline},
		{CategoryReward, authz.KindReward},
	}
	for _, tc := range cases {
		if got := tc.category.Kind(); got != tc.kind {
			t.Fatalf("category %s mapped to kind %s, want %s", tc.category, got, tc.kind)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	if !CategoryDiscipline.Valid() || !CategoryReward.Valid() {
		t.Fatal("known categories must be valid")
	}
	if Category("PRAISE").Valid() {
		t.Fatal("unknown category must be invalid")
	}
}
