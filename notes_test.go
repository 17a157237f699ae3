package main

import (
	"errors"
	"testing"
)

func TestNotesCRUD(t *testing.T) {
	notes := NewNotesStore(NewMemStore())

	if _, err := notes.Create("", "body", "bg-white"); !errors.Is(err, ErrValidation) {
		t.Fatalf("create without title = %v, want ErrValidation", err)
	}

	created, err := notes.Create("Routing", "OSPF vs BGP", "bg-hotpink-999")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Background != "bg-white" {
		t.Errorf("unknown background = %q, want default bg-white", created.Background)
	}

	updated, err := notes.Update(created.ID, "Routing", "updated", "bg-yellow-100")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Content != "updated" || updated.Background != "bg-yellow-100" {
		t.Errorf("updated note = %+v", updated)
	}

	if _, err := notes.Update("missing", "x", "", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing = %v, want ErrNotFound", err)
	}

	if err := notes.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(notes.List()); got != 0 {
		t.Errorf("list after delete = %d notes", got)
	}
	if err := notes.Delete("missing"); err != nil {
		t.Errorf("delete missing = %v, want nil", err)
	}
}

func TestTasksToggleAndCount(t *testing.T) {
	tasks := NewTasksStore(NewMemStore())

	if _, err := tasks.Create("", "", PriorityHigh, ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("create without title = %v, want ErrValidation", err)
	}

	a, err := tasks.Create("Review chapter 3", "", PriorityHigh, "2026-09-01")
	if err != nil {
		t.Fatal(err)
	}
	b, err := tasks.Create("Practice quiz", "", "urgent-ish", "")
	if err != nil {
		t.Fatal(err)
	}
	if b.Priority != PriorityMedium {
		t.Errorf("unknown priority = %q, want medium default", b.Priority)
	}

	toggled, err := tasks.Toggle(a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !toggled.Completed {
		t.Error("toggle did not complete the task")
	}
	done, total := tasks.Done()
	if done != 1 || total != 2 {
		t.Errorf("Done() = %d/%d, want 1/2", done, total)
	}

	back, err := tasks.Toggle(a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if back.Completed {
		t.Error("second toggle left the task completed")
	}

	if _, err := tasks.Toggle("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("toggle missing = %v, want ErrNotFound", err)
	}

	if err := tasks.Delete(a.ID); err != nil {
		t.Fatal(err)
	}
	if _, total := tasks.Done(); total != 1 {
		t.Errorf("total after delete = %d, want 1", total)
	}
}
