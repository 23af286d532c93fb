package seed

import "testing"

func TestGenerator_Areas(t *testing.T) {
	g := NewGenerator(1)
	areas := g.Areas()
	if len(areas) != 5 {
		t.Fatalf("expected 5 areas, got %d", len(areas))
	}
	for _, a := range areas {
		if a.CarsCount < 5 || a.CarsCount > 30 {
			t.Fatalf("cars count out of range: %+v", a)
		}
		if a.BookedCount < 0 || a.BookedCount > a.CarsCount {
			t.Fatalf("booked count out of range: %+v", a)
		}
		if a.BestPrice < 80 || a.BestPrice > 200 {
			t.Fatalf("best price out of range: %+v", a)
		}
	}
	if areas[0].AreaID != 1 || areas[4].AreaID != 5 {
		t.Fatalf("expected area ids 1..5, got %+v", areas)
	}
}

func TestGenerator_Users(t *testing.T) {
	g := NewGenerator(1)
	users := g.Users(10)
	if len(users) != 10 {
		t.Fatalf("expected 10 users, got %d", len(users))
	}
	for i, u := range users {
		if u.ID != i+1 {
			t.Fatalf("expected sequential ids, got %+v", users)
		}
		if u.Name == "" {
			t.Fatalf("expected a name for user %d", u.ID)
		}
	}
}

func TestGenerator_Events(t *testing.T) {
	g := NewGenerator(1)
	events := g.Events(10)
	if len(events) != 10 {
		t.Fatalf("expected 10 events, got %d", len(events))
	}
	for _, e := range events {
		if e.Name == "" || e.Type == "" || e.Date == "" {
			t.Fatalf("incomplete event: %+v", e)
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(9).Areas()
	b := NewGenerator(9).Areas()
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("expected identical areas for the same seed")
		}
	}
}
