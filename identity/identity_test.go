package identity

import "testing"

func TestExtract_Templates(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"My name is Alice Smith", "Alice Smith"},
		{"my name is bob", "Bob"},
		{"I am Alice", "Alice"},
		{"I'm bob jones", "Bob Jones"},
		{"call me Ishmael", "Ishmael"},
		{"name me Rex", "Rex"},
		{"it's John", "John"},
		{"its john", "John"},
		{"hi Bob", "Bob"},
	}
	for _, tc := range cases {
		got, ok := Extract(tc.text)
		if !ok {
			t.Errorf("Extract(%q) failed, want %q", tc.text, tc.want)
			continue
		}
		if got != tc.want {
			t.Errorf("Extract(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestExtract_TemplatePrecedence(t *testing.T) {
	// "my name is" outranks the later "it's" template.
	got, ok := Extract("it's fine, my name is Carol")
	if !ok || got != "Carol" {
		t.Fatalf("Extract = %q, %v; want Carol, true", got, ok)
	}
}

func TestExtract_BareNames(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Alice", "Alice"},
		{"alice smith", "Alice Smith"},
		{"Jean Luc Picard", "Jean Luc Picard"},
		{"O'Brien", "O'brien"},
	}
	for _, tc := range cases {
		got, ok := Extract(tc.text)
		if !ok || got != tc.want {
			t.Errorf("Extract(%q) = %q, %v; want %q, true", tc.text, got, ok, tc.want)
		}
	}
}

func TestExtract_Rejections(t *testing.T) {
	cases := []string{
		"how are you",     // stop word, and 3 tokens
		"Xx Yy Zz Ww",     // 4 tokens
		"hello",           // stop word
		"what",            // stop word
		"ship to 221b",    // non-alphabetic token
		"",                // empty
		"   ",             // blank
		"can you help me", // stop word + 4 tokens
	}
	for _, text := range cases {
		if got, ok := Extract(text); ok {
			t.Errorf("Extract(%q) = %q, want rejection", text, got)
		}
	}
}

func TestFromTemplate_IgnoresBareText(t *testing.T) {
	if got, ok := FromTemplate("Alice"); ok {
		t.Fatalf("FromTemplate accepted bare text %q", got)
	}
	if got, ok := FromTemplate("call me Alice"); !ok || got != "Alice" {
		t.Fatalf("FromTemplate = %q, %v; want Alice, true", got, ok)
	}
}
