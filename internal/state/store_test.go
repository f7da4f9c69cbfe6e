package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/bookgrid/internal/books"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	if !s.Snapshot().Pending() {
		t.Fatal("Pending() = false, want true before any update")
	}

	items := []books.Book{{Title: "Dune"}, {Title: "Emma"}}
	before := time.Now()
	s.Update(items, nil)

	snap := s.Snapshot()
	if !snap.Loaded || snap.Attempts != 1 || snap.Pending() {
		t.Fatalf("snapshot = %#v, want loaded after one attempt", snap)
	}
	if len(snap.Books) != 2 || snap.Books[0].Title != "Dune" {
		t.Fatalf("snapshot books = %#v, want 2 items", snap.Books)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Neither the caller's slice nor a returned snapshot may alias the store.
	items[0].Title = "changed"
	snap.Books[1].Title = "changed"
	snap2 := s.Snapshot()
	if snap2.Books[0].Title != "Dune" || snap2.Books[1].Title != "Emma" {
		t.Fatalf("Snapshot should clone books; got %#v", snap2.Books)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update([]books.Book{{Title: "Dune"}}, nil)

	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if len(snap.Books) != 1 || snap.Books[0].Title != "Dune" {
		t.Fatalf("books changed on error: got %#v", snap.Books)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError should wrap the original error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if snap.Failed() {
		t.Fatal("Failed() = true, want false when data has loaded before")
	}
}

func TestStore_FailuresAndFailed(t *testing.T) {
	var s Store

	s.Update(nil, errors.New("fail 1"))
	snap := s.Snapshot()
	if snap.Failures != 1 || !snap.Failed() {
		t.Fatalf("after one failure: failures=%d failed=%v", snap.Failures, snap.Failed())
	}

	s.Update(nil, errors.New("fail 2"))
	snap = s.Snapshot()
	if snap.Failures != 2 || snap.Attempts != 2 {
		t.Fatalf("failures=%d attempts=%d, want 2/2", snap.Failures, snap.Attempts)
	}

	s.Update([]books.Book{}, nil)
	snap = s.Snapshot()
	if snap.Failures != 0 || snap.Failed() || !snap.Loaded {
		t.Fatalf("after success: %#v", snap)
	}
	if snap.Books != nil {
		t.Fatalf("empty dataset books = %#v, want nil", snap.Books)
	}
}
