package validate

import (
	"net/http/httptest"
	"strings"
	"testing"
)

type testInput struct {
	Email string   `json:"email" validate:"required,email"`
	Age   int      `json:"age" validate:"gte=0"`
	Tags  []string `json:"tags"`
}

func TestJSONBodyInto(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		var in testInput
		body := strings.NewReader(`{"email":"a@b.co","age":30,"tags":["x","y"]}`)
		if err := v.JSONBodyInto(body, &in); err != nil {
			t.Fatal(err)
		}
		if in.Email != "a@b.co" || in.Age != 30 || len(in.Tags) != 2 {
			t.Errorf("decoded input = %+v", in)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		var in testInput
		err := v.JSONBodyInto(strings.NewReader(`{`), &in)
		if err == nil {
			t.Fatal("error = nil")
		}
		if IsValidationError(err) {
			t.Error("decode failure reported as validation error")
		}
	})

	t.Run("failing validation", func(t *testing.T) {
		var in testInput
		err := v.JSONBodyInto(strings.NewReader(`{"email":"not-an-email"}`), &in)
		if err == nil {
			t.Fatal("error = nil")
		}
		if !IsValidationError(err) {
			t.Errorf("error = %v, want validation error", err)
		}
	})
}

func TestURLSearchParamsInto(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		var in testInput
		r := httptest.NewRequest("GET", "/x?email=a%40b.co&age=41&tags=x&tags=y", nil)
		if err := v.URLSearchParamsInto(r, &in); err != nil {
			t.Fatal(err)
		}
		if in.Email != "a@b.co" || in.Age != 41 || len(in.Tags) != 2 {
			t.Errorf("decoded input = %+v", in)
		}
	})

	t.Run("bad number", func(t *testing.T) {
		var in testInput
		r := httptest.NewRequest("GET", "/x?email=a%40b.co&age=abc", nil)
		if err := v.URLSearchParamsInto(r, &in); err == nil {
			t.Error("error = nil")
		}
	})

	t.Run("failing validation", func(t *testing.T) {
		var in testInput
		r := httptest.NewRequest("GET", "/x?email=nope", nil)
		err := v.URLSearchParamsInto(r, &in)
		if !IsValidationError(err) {
			t.Errorf("error = %v, want validation error", err)
		}
	})
}
