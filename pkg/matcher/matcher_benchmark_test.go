package matcher

import (
	"fmt"
	"runtime"
	"testing"
)

func setupMatcherForBenchmark(scale string) *Matcher[int] {
	m := New[int]()
	register := func(pattern string) {
		if err := m.Register(pattern, 0); err != nil {
			panic(err)
		}
	}

	switch scale {
	case "small":
		register("/")
		register("/users")
		register("/users/:id")
		register("/users/:id/profile")
		register("/api/v1/users")
		register("/api/:version/users")
		register("/files/*")

	case "medium":
		for i := 0; i < 200; i++ {
			register(fmt.Sprintf("/api/v%d/users", i%5))
			register(fmt.Sprintf("/api/v%d/users/:id", i%5))
			register(fmt.Sprintf("/api/v%d/users/:id/posts/:postid", i%5))
			register(fmt.Sprintf("/files/bucket%d/*", i%10))
		}
	}

	m.Match("/") // force the build outside the timed loop
	return m
}

func BenchmarkMatch(b *testing.B) {
	scenarios := []struct {
		name string
		path string
	}{
		{"StaticPattern", "/api/v1/users"},
		{"DynamicPattern", "/api/v1/users/123/posts/456"},
		{"SplatPattern", "/files/bucket1/deep/path/file.txt"},
		{"NoMatch", "/completely/unknown/path"},
	}

	for _, s := range scenarios {
		b.Run(s.name, func(b *testing.B) {
			m := setupMatcherForBenchmark("medium")
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				match, _ := m.Match(s.path)
				runtime.KeepAlive(match)
			}
		})
	}
}

func BenchmarkRebuild(b *testing.B) {
	m := setupMatcherForBenchmark("medium")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Register(fmt.Sprintf("/bench/%d", i), i); err != nil {
			b.Fatal(err)
		}
		m.Match("/") // triggers the rebuild
	}
}
