package generate

import (
	"fmt"
	"testing"
)

func TestBuildRosterDeterministic(t *testing.T) {
	h1, r1, err := BuildRoster(7, 5)
	if err != nil {
		t.Fatalf("BuildRoster: %v", err)
	}
	h2, r2, err := BuildRoster(7, 5)
	if err != nil {
		t.Fatalf("BuildRoster: %v", err)
	}
	if h1.Address != h2.Address || h1.Phone != h2.Phone {
		t.Errorf("same seed produced different hospitals: %+v vs %+v", h1, h2)
	}
	if len(r1) != len(r2) {
		t.Fatalf("got roster sizes %d and %d, want equal", len(r1), len(r2))
	}
	for i := range r1 {
		if r1[i].LastName != r2[i].LastName || r1[i].DepartmentCode != r2[i].DepartmentCode {
			t.Errorf("physician %d differs between identically seeded rosters: %+v vs %+v", i, r1[i], r2[i])
		}
	}
}

func TestBuildRosterVariesBySeed(t *testing.T) {
	_, r1, err := BuildRoster(1, 5)
	if err != nil {
		t.Fatalf("BuildRoster: %v", err)
	}
	_, r2, err := BuildRoster(2, 5)
	if err != nil {
		t.Fatalf("BuildRoster: %v", err)
	}
	same := true
	for i := range r1 {
		if r1[i].LastName != r2[i].LastName {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced an identical roster")
	}
}

func TestBuildRosterSize(t *testing.T) {
	_, roster, err := BuildRoster(1, 12)
	if err != nil {
		t.Fatalf("BuildRoster: %v", err)
	}
	if len(roster) != 12 {
		t.Errorf("got %d physicians, want 12", len(roster))
	}
	for i, p := range roster {
		want := fmt.Sprintf("PHY%05d", i+1)
		if p.PhysicianID != want {
			t.Errorf("roster[%d].PhysicianID = %q, want %q", i, p.PhysicianID, want)
		}
	}
}
