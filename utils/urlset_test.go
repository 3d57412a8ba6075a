package utils

import "testing"

func TestURLSetNoDuplicates(t *testing.T) {
	s := NewURLSet()

	added := s.Add("https://example.com/1")
	if !added {
		t.Error("first Add should return true")
	}

	added = s.Add("https://example.com/1")
	if added {
		t.Error("second Add of same URL should return false")
	}
}

func TestURLSetContains(t *testing.T) {
	s := NewURLSet()
	for _, u := range []string{"c", "a", "c", "b"} {
		s.Add(u)
	}

	for _, u := range []string{"a", "b", "c"} {
		if !s.Contains(u) {
			t.Errorf("Contains(%q): got false, want true", u)
		}
	}
	if s.Contains("d") {
		t.Error("Contains(\"d\"): got true, want false")
	}
}
