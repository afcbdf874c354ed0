package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Body, Small, Speech, Heading, Title} {
		if name.Get() == nil {
			t.Errorf("%s has no face", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
