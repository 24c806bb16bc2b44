package devotional

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/feemjesusbr/backend/internal/analysis/message"
	"github.com/feemjesusbr/backend/internal/model/emotion"
	verseservice "github.com/feemjesusbr/backend/internal/service/verse"
)

// minContentLength is the shortest remote devotional accepted as usable,
// in runes.
const minContentLength = 40

const devotionalSystemPrompt = `Você é um escritor devocional cristão do aplicativo Fé em Jesus BR. ` +
	`Escreva um devocional curto em português do Brasil (dois ou três parágrafos), com tom pastoral ` +
	`e fundamentado na Bíblia, sem conselhos médicos ou financeiros.`

const certificateSystemPrompt = `Você é um escritor cristão do aplicativo Fé em Jesus BR. ` +
	`Escreva uma oração curta de gratidão em português do Brasil, personalizada para um contribuidor ` +
	`do ministério, citando o nome da pessoa e terminando com "Amém".`

// TextGenerator is the remote text provider contract shared with the
// assistant service. nil means offline.
type TextGenerator interface {
	Name() string
	Generate(ctx context.Context, system, query string) (string, error)
}

// Devotional is longer-form templated content for one emotional state.
type Devotional struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Verse     string `json:"verse"`
	Reference string `json:"reference"`
	Prayer    string `json:"prayer"`
}

// Certificate is the thank-you content attached to a new contributor.
type Certificate struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	Prayer         string `json:"aiGeneratedPrayer"`
	Verse          string `json:"aiGeneratedVerse"`
	VerseReference string `json:"verseReference"`
}

// Service composes devotionals and certificates from templates, upgrading
// the text with the remote model when one is available. Both operations
// always succeed.
type Service struct {
	llm    TextGenerator
	verses *verseservice.Service
	titler cases.Caser
}

// NewService builds the generator. llm may be nil.
func NewService(llm TextGenerator, verses *verseservice.Service) *Service {
	return &Service{
		llm:    llm,
		verses: verses,
		titler: cases.Title(language.BrazilianPortuguese),
	}
}

// Devotional produces the devotional for an emotion label. Unknown labels
// resolve to the default category. Intensity (1-10, optional as 0) only
// shapes the remote prompt.
func (s *Service) Devotional(ctx context.Context, emotionLabel string, intensity int) Devotional {
	entry := emotion.Lookup(emotion.Category(message.Normalize(emotionLabel)))

	content := entry.Devotional
	if s.llm != nil {
		query := fmt.Sprintf("Escreva um devocional para alguém sentindo %s.", entry.Label)
		if intensity > 0 {
			query = fmt.Sprintf("%s A intensidade desse sentimento é %d de 10.", query, intensity)
		}
		query = fmt.Sprintf("%s Baseie-se no versículo: %q (%s).", query, entry.Verse.Text, entry.Verse.Reference)

		if text, err := s.llm.Generate(ctx, devotionalSystemPrompt, query); err != nil {
			log.Printf("[devotional] provider=%s attempt failed: %v", s.llm.Name(), err)
		} else if utf8.RuneCountInString(strings.TrimSpace(text)) < minContentLength {
			log.Printf("[devotional] provider=%s response too short, using template", s.llm.Name())
		} else {
			content = strings.TrimSpace(text)
		}
	}

	return Devotional{
		Title:     "Devocional: " + s.titler.String(entry.Label),
		Content:   content,
		Verse:     entry.Verse.Text,
		Reference: entry.Verse.Reference,
		Prayer:    entry.Prayer,
	}
}

// Certificate produces the contributor thank-you certificate. Optional
// fields that are absent drop their sentence instead of rendering empty
// placeholders.
func (s *Service) Certificate(ctx context.Context, name string, donationAmount float64, specialMessage string) Certificate {
	verse := s.verses.Random(ctx)

	var content strings.Builder
	fmt.Fprintf(&content, "O ministério Fé em Jesus BR agradece a %s por sua contribuição generosa.", name)
	if donationAmount > 0 {
		fmt.Fprintf(&content, " Sua oferta de R$ %.2f ajuda a levar a Palavra a mais pessoas.", donationAmount)
	}
	if msg := strings.TrimSpace(specialMessage); msg != "" {
		fmt.Fprintf(&content, " Guardamos com carinho sua mensagem: %q.", msg)
	}
	content.WriteString(" Que Deus multiplique em bênçãos tudo o que você semeou.")

	prayer := fmt.Sprintf("Senhor, abençoa %s por sua generosidade. Que cada semente plantada produza frutos de vida e que a Tua graça transborde em seu caminho. Amém.", name)
	if s.llm != nil {
		query := fmt.Sprintf("O contribuidor se chama %s.", name)
		if msg := strings.TrimSpace(specialMessage); msg != "" {
			query = fmt.Sprintf("%s Mensagem deixada por essa pessoa: %q.", query, msg)
		}
		if text, err := s.llm.Generate(ctx, certificateSystemPrompt, query); err != nil {
			log.Printf("[certificate] provider=%s attempt failed: %v", s.llm.Name(), err)
		} else if utf8.RuneCountInString(strings.TrimSpace(text)) < minContentLength {
			log.Printf("[certificate] provider=%s response too short, using template", s.llm.Name())
		} else {
			prayer = strings.TrimSpace(text)
		}
	}

	return Certificate{
		Title:          "Certificado de Gratidão",
		Content:        content.String(),
		Prayer:         prayer,
		Verse:          verse.Text,
		VerseReference: verse.Reference,
	}
}
