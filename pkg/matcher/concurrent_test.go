package matcher

import (
	"fmt"
	"sync"
	"testing"
)

// Many goroutines matching against one matcher, with registrations arriving
// mid-flight. Matches in progress complete against whichever compiled
// instance they started with; nothing is mutated in place.
func TestConcurrentMatch(t *testing.T) {
	m := New[int]()
	for i := 0; i < 50; i++ {
		if err := m.Register(fmt.Sprintf("/api/v%d/users/:id", i), i); err != nil {
			t.Fatal(err)
		}
	}

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				path := fmt.Sprintf("/api/v%d/users/%d", i%50, i)
				match, ok := m.Match(path)
				if !ok {
					t.Errorf("Match(%q) = no match", path)
					return
				}
				if match.Params["id"] != fmt.Sprintf("%d", i) {
					t.Errorf("Match(%q) params = %v", path, match.Params)
					return
				}
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			if err := m.Register(fmt.Sprintf("/late/%d", i), 1000+i); err != nil {
				t.Errorf("Register error = %v", err)
				return
			}
		}
	}()

	wg.Wait()

	match, ok := m.Match("/late/19")
	if !ok || match.Handler != 1019 {
		t.Errorf("Match(\"/late/19\") after concurrent registration = %v, %t", match, ok)
	}
}
