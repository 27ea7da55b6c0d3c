package domain

import "testing"

func runQueryCases(t *testing.T, cases []struct {
	query    string
	subject  string
	expected bool
}) {
	t.Helper()
	for _, c := range cases {
		q, err := ParseQuery(c.query)
		if err != nil {
			t.Fatalf("ParseQuery(%q) failed: %v", c.query, err)
		}
		if got := q.Matches(c.subject); got != c.expected {
			t.Errorf("query %q on %q: expected %v, got %v", c.query, c.subject, c.expected, got)
		}
	}
}

func TestQuery_Fixed(t *testing.T) {
	runQueryCases(t, []struct {
		query    string
		subject  string
		expected bool
	}{
		{"myTest", "MYTEST", true},
		{"myTest", "mytes", false},
	})
}

func TestQuery_Star(t *testing.T) {
	runQueryCases(t, []struct {
		query    string
		subject  string
		expected bool
	}{
		{"*test*", "mytestproject", true},
		{"*test*", "project", false},
		{"mytest*", "mytestproject", true},
		{"nytest*", "mytestproject", false},
		{"*", "anything", true},
		{"*", "", true},
	})
}

func TestQuery_OptionalChar(t *testing.T) {
	runQueryCases(t, []struct {
		query    string
		subject  string
		expected bool
	}{
		{"test?", "test", true},
		{"test?", "test2", true},
		{"test", "test2", false},
	})
}

func TestQuery_RequiredChar(t *testing.T) {
	runQueryCases(t, []struct {
		query    string
		subject  string
		expected bool
	}{
		{"test_", "test", false},
		{"test_", "test2", true},
		{"test", "test2", false},
	})
}

func TestQuery_Digit(t *testing.T) {
	runQueryCases(t, []struct {
		query    string
		subject  string
		expected bool
	}{
		{"test#", "test", false},
		{"test#", "test2", true},
		{"test#", "test42", true},
		{"test#", "testx", false},
	})
}

func TestQuery_Empty(t *testing.T) {
	if _, err := ParseQuery("   "); err == nil {
		t.Fatal("expected empty query to fail")
	}
}

func TestQuery_MatchesProject(t *testing.T) {
	p := Project{Path: "/home/dev/src/webshop", Kinds: []string{"node"}}

	cases := []struct {
		query    string
		expected bool
	}{
		{"webshop", true},
		{"web*", true},
		{"src", true}, // path component
		{"backend", false},
	}
	for _, c := range cases {
		q, err := ParseQuery(c.query)
		if err != nil {
			t.Fatalf("ParseQuery(%q) failed: %v", c.query, err)
		}
		if got := q.MatchesProject(p); got != c.expected {
			t.Errorf("query %q on %s: expected %v, got %v", c.query, p.Path, c.expected, got)
		}
	}
}

func TestQuery_MatchesProjectWindowsPath(t *testing.T) {
	p := Project{Path: `C:\dev\src\webshop`, Kinds: []string{"dotnet"}}

	q, err := ParseQuery("src")
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}
	if !q.MatchesProject(p) {
		t.Error("backslash-separated path component did not match")
	}
}
