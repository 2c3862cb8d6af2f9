package logging

import "testing"

func TestMaskUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		enabled  bool
		want     string
	}{
		{"realm付き", "alice.smith@example.com", true, "al********h@example.com"},
		{"realmなし", "bobmarley", true, "bo******y"},
		{"短い名前はそのまま", "bob", true, "bob"},
		{"無効時はそのまま", "alice.smith@example.com", false, "alice.smith@example.com"},
		{"空文字列", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskUsername(tt.username, tt.enabled)
			if got != tt.want {
				t.Errorf("MaskUsername(%q) = %q, want %q", tt.username, got, tt.want)
			}
		})
	}
}

func TestMaskPartial(t *testing.T) {
	got := MaskPartial("1234567890", 3, 2, '*')
	if got != "123*****90" {
		t.Errorf("MaskPartial = %q, want %q", got, "123*****90")
	}
}

func TestMasker(t *testing.T) {
	m := NewMasker(true)
	if !m.IsEnabled() {
		t.Error("IsEnabled = false, want true")
	}
	if got := m.Username("charlie@isp.net"); got == "charlie@isp.net" {
		t.Errorf("Username should be masked, got %q", got)
	}

	off := NewMasker(false)
	if got := off.Username("charlie@isp.net"); got != "charlie@isp.net" {
		t.Errorf("Username = %q, want unmasked", got)
	}
}
