package message

import "testing"

func TestClassifyPrayerKeyword(t *testing.T) {
	intent := Classify("Preciso de oração pela minha família")
	if intent != PrayerRequest {
		t.Fatalf("expected prayer intent, got %s", intent)
	}
}

func TestClassifyAccentInsensitive(t *testing.T) {
	withAccents := Classify("Preciso de ORAÇÃO urgente")
	without := Classify("preciso de oracao urgente")
	if withAccents != PrayerRequest || without != PrayerRequest {
		t.Fatalf("expected prayer intent for both spellings, got %s and %s", withAccents, without)
	}
}

func TestClassifyAnxiousMessage(t *testing.T) {
	intent := Classify("Estou muito ansioso com meu futuro")
	if intent != Anxiety {
		t.Fatalf("expected anxiety intent, got %s", intent)
	}
}

func TestClassifySadMessage(t *testing.T) {
	intent := Classify("Me sinto muito triste hoje")
	if intent != Comfort {
		t.Fatalf("expected comfort intent, got %s", intent)
	}
}

func TestClassifyGratitude(t *testing.T) {
	intent := Classify("Obrigado por tudo, glória a Deus!")
	if intent != Gratitude {
		t.Fatalf("expected gratitude intent, got %s", intent)
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// Prayer keywords outrank the anxiety bucket.
	intent := Classify("Peço oração porque estou ansioso")
	if intent != PrayerRequest {
		t.Fatalf("expected prayer intent to win, got %s", intent)
	}
}

func TestClassifyUnmatchedDefaultsToGeneral(t *testing.T) {
	intent := Classify("A reunião de amanhã mudou de horário")
	if intent != General {
		t.Fatalf("expected general intent, got %s", intent)
	}
}

func TestClassifyEmptyMessage(t *testing.T) {
	if intent := Classify("   "); intent != General {
		t.Fatalf("expected general intent for empty message, got %s", intent)
	}
}

func TestNormalizeStripsAccents(t *testing.T) {
	if got := Normalize("Coração Aflição"); got != "coracao aflicao" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}
