package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Genel Kurul", "genel-kurul"},
		{"turkish dotless i", "Toplantı", "toplanti"},
		{"turkish letters", "Çalışma Grubu Öğeleri", "calisma-grubu-ogeleri"},
		{"punctuation stripped", "Basın Açıklaması: 2025!", "basin-aciklamasi-2025"},
		{"collapse whitespace", "  Üye   Listesi \t Güncel ", "uye-listesi-guncel"},
		{"existing hyphens kept", "kamu-ar raporu", "kamu-ar-raporu"},
		{"hyphen islands collapsed", "a - b -- c", "a-b-c"},
		{"non-latin dropped", "Сообщение 42", "42"},
		{"empty", "", ""},
		{"only punctuation", "!?.,", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Make(tc.title); got != tc.want {
				t.Errorf("Make(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestMakeDeterministic(t *testing.T) {
	titles := []string{"Genel Kurul", "Toplantı", "İş Bırakma Eylemi"}
	for _, title := range titles {
		if a, b := Make(title), Make(title); a != b {
			t.Errorf("Make(%q) not deterministic: %q vs %q", title, a, b)
		}
	}
}
