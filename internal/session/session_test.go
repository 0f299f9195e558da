package session

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestOpenClose(t *testing.T) {
	m := NewManager()

	id := m.Open("alice", "10.0.0.1:5555")
	if _, err := uuid.Parse(string(id)); err != nil {
		t.Fatalf("Open() id %q is not a UUID", id)
	}
	if m.Active() != 1 {
		t.Errorf("Active() = %d, expected 1", m.Active())
	}

	if _, ok := m.Close(id); !ok {
		t.Error("Close() should report a known session")
	}
	if m.Active() != 0 {
		t.Errorf("Active() = %d after Close, expected 0", m.Active())
	}
	if _, ok := m.Close(id); ok {
		t.Error("second Close() should be a no-op")
	}
}

func TestCloseReportsDuration(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := base
	m := NewManager()
	m.now = func() time.Time { return now }

	id := m.Open("bob", "remote")
	now = base.Add(90 * time.Second)

	d, ok := m.Close(id)
	if !ok || d != 90*time.Second {
		t.Errorf("Close() = %v, %v; expected 90s, true", d, ok)
	}
}

func TestListOrder(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := base
	m := NewManager()
	m.now = func() time.Time { return now }

	first := m.Open("a", "r1")
	now = now.Add(time.Second)
	second := m.Open("b", "r2")

	list := m.List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d entries, expected 2", len(list))
	}
	if list[0].ID != first || list[1].ID != second {
		t.Errorf("List() order = %v, %v", list[0].ID, list[1].ID)
	}
	if list[0].User != "a" || list[0].Remote != "r1" {
		t.Errorf("List()[0] = %+v", list[0])
	}
}

func TestConcurrentOpenClose(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := m.Open("user", "remote")
			m.Close(id)
		}()
	}
	wg.Wait()

	if m.Active() != 0 {
		t.Errorf("Active() = %d, expected 0", m.Active())
	}
}
