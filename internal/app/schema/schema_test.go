package schema

import (
	"testing"
)

func TestDeletionOrderCoversAllTables(t *testing.T) {
	order, err := DeletionOrder()
	if err != nil {
		t.Fatalf("DeletionOrder() error = %v", err)
	}

	if len(order) != len(dependencies) {
		t.Fatalf("DeletionOrder() returned %d tables, want %d", len(order), len(dependencies))
	}

	seen := make(map[string]bool, len(order))
	for _, name := range order {
		if seen[name] {
			t.Errorf("table %s appears twice in deletion order", name)
		}
		seen[name] = true
	}
}

func TestDeletionOrderRespectsForeignKeys(t *testing.T) {
	order, err := DeletionOrder()
	if err != nil {
		t.Fatalf("DeletionOrder() error = %v", err)
	}

	position := make(map[string]int, len(order))
	for i, name := range order {
		position[name] = i
	}

	// Every table must be deleted before the tables it references.
	for name, parents := range dependencies {
		for _, parent := range parents {
			if position[name] > position[parent] {
				t.Errorf("table %s must be deleted before %s (got positions %d > %d)",
					name, parent, position[name], position[parent])
			}
		}
	}
}

func TestDeletionOrderExcludesUsers(t *testing.T) {
	order, err := DeletionOrder()
	if err != nil {
		t.Fatalf("DeletionOrder() error = %v", err)
	}

	for _, name := range order {
		if name == "users" {
			t.Fatal("users table must never appear in the purge order")
		}
	}
}

func TestDeletionOrderIsDeterministic(t *testing.T) {
	first, err := DeletionOrder()
	if err != nil {
		t.Fatalf("DeletionOrder() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		next, err := DeletionOrder()
		if err != nil {
			t.Fatalf("DeletionOrder() error = %v", err)
		}
		for j := range first {
			if next[j] != first[j] {
				t.Fatalf("DeletionOrder() is not deterministic: run %d differs at index %d (%s vs %s)",
					i, j, next[j], first[j])
			}
		}
	}
}

func TestLeafTablesComeFirst(t *testing.T) {
	order, err := DeletionOrder()
	if err != nil {
		t.Fatalf("DeletionOrder() error = %v", err)
	}

	position := make(map[string]int, len(order))
	for i, name := range order {
		position[name] = i
	}

	if last := position[TableColleges]; last != len(order)-1 {
		t.Errorf("colleges is the hierarchy root and must be deleted last, got position %d", last)
	}

	// Join and leaf activity tables have no dependants and must precede
	// everything they reference.
	for _, leaf := range []string{TableStudentEnrollments, TableSubmissions, TableAttendanceRecords, TableExamSubjectResults} {
		if position[leaf] > position[TableCourses] && leaf != TableExamSubjectResults {
			t.Errorf("%s must be deleted before courses", leaf)
		}
	}
}
