package domain

import "testing"

func TestEntryID(t *testing.T) {
	a := EntryID("Python", "Fluent Python", "https://example.com/fp")
	b := EntryID("Python", "Fluent Python", "https://example.com/fp")
	c := EntryID("General programming/IT", "Fluent Python", "https://example.com/fp")

	if a != b {
		t.Errorf("EntryID() not stable: %s != %s", a, b)
	}
	if a == c {
		t.Error("EntryID() should differ across categories")
	}
	if len(a) != 36 {
		t.Errorf("EntryID() = %q, want a UUID string", a)
	}
}

func TestIsNotFree(t *testing.T) {
	tests := []struct {
		annotation string
		want       bool
	}{
		{"*(Not free!)*", true},
		{"(not FREE)", true},
		{"", false},
		{"*(Free online)*", false},
	}
	for _, tt := range tests {
		if got := IsNotFree(tt.annotation); got != tt.want {
			t.Errorf("IsNotFree(%q) = %v, want %v", tt.annotation, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Python", "python"},
		{"General programming/IT", "general-programming-it"},
		{"Git/version control systems (VCS)", "git-version-control-systems-vcs"},
		{"JavaScript/ECMAScript", "javascript-ecmascript"},
		{"C++", "cpp"},
		{"MOOC platforms", "mooc-platforms"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategoryState(t *testing.T) {
	xref := &Category{Name: "Git", Prose: []string{"See the Git guide."}}
	if !xref.CrossReference() || xref.Empty() {
		t.Error("prose-only category should be a cross reference")
	}

	empty := &Category{Name: "Empty"}
	if !empty.Empty() || empty.CrossReference() {
		t.Error("bodyless category should be empty")
	}
}
