package message

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Intent is the coarse category assigned to an incoming user message.
type Intent string

const (
	Greeting      Intent = "greeting"
	PrayerRequest Intent = "prayer"
	Comfort       Intent = "comfort"
	Anxiety       Intent = "anxiety"
	Doubt         Intent = "doubt"
	Gratitude     Intent = "gratitude"
	General       Intent = "general"
)

// bucket pairs an intent with its trigger keywords. Keywords are stored
// already lowercased and accent-stripped; the incoming text is normalized
// the same way before matching.
type bucket struct {
	intent   Intent
	keywords []string
}

// buckets are checked in order and the first hit wins, so the more specific
// intents come before the broad ones. The lists are tunable content, not a
// contract.
var buckets = []bucket{
	{PrayerRequest, []string{
		" oracao", " orar", " orem", " ore ", "interceda", "intercessao", " clamor", " clame",
	}},
	{Anxiety, []string{
		"ansioso", "ansiosa", "ansiedade", "preocupado", "preocupada", "preocupacao",
		"nervoso", "nervosa", "aflito", "aflita", "angustia", "angustiado", "angustiada", "futuro incerto",
	}},
	{Comfort, []string{
		"triste", "tristeza", "chorando", "chorei", "sofrendo", "sofrimento", "deprimido",
		"deprimida", "depressao", "perdi", "luto", "magoado", "magoada", "sozinho", "sozinha", "solidao",
	}},
	{Doubt, []string{
		"duvida", "nao sei", "o que fazer", "decisao", "caminho", "direcao", "conselho",
		"orientacao", "sera que", "devo",
	}},
	{Gratitude, []string{
		"obrigado", "obrigada", "gratidao", "grato", "grata", "agradecer", "agradecido",
		"agradecida", "gracas a deus", "aleluia", "gloria a deus",
	}},
	{Greeting, []string{
		" ola ", " oi ", "bom dia", "boa tarde", "boa noite", "paz do senhor", "tudo bem",
	}},
}

// Classify maps free text to an intent. Matching is case-insensitive and
// accent-insensitive substring containment; unmatched text is General.
func Classify(text string) Intent {
	normalized := Normalize(text)
	if normalized == "" {
		return General
	}

	// Pad so keywords anchored with spaces (" oi ") can match at the edges.
	padded := " " + normalized + " "
	for _, b := range buckets {
		for _, word := range b.keywords {
			if word == "" {
				continue
			}
			if strings.Contains(padded, word) {
				return b.intent
			}
		}
	}
	return General
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases the text and removes combining accent marks, so that
// "Oração" and "oracao" compare equal.
func Normalize(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	stripped, _, err := transform.String(stripAccents, lowered)
	if err != nil {
		return lowered
	}
	return stripped
}
