package emotion

import "github.com/feemjesusbr/backend/internal/model/verse"

// Category identifies one curated emotional state.
type Category string

const (
	Ansioso   Category = "ansioso"
	Triste    Category = "triste"
	Alegre    Category = "alegre"
	Medo      Category = "medo"
	Grato     Category = "grato"
	Cansado   Category = "cansado"
	Sozinho   Category = "sozinho"
	Irritado  Category = "irritado"
	Confiante Category = "confiante"
)

// Default is the category used when the requested one is unknown.
const Default = Ansioso

// Entry holds the curated content attached to one category.
type Entry struct {
	Label      string
	Devotional string
	Verse      verse.Verse
	Prayer     string
}

var table = map[Category]Entry{
	Ansioso: {
		Label:      "ansiedade",
		Devotional: "A ansiedade tenta antecipar um amanhã que ainda não chegou. Deus convida você a entregar cada preocupação a Ele, um dia de cada vez, e a descansar na certeza de que Ele já está no seu futuro.",
		Verse:      verse.New("Lançando sobre ele toda a vossa ansiedade, porque ele tem cuidado de vós.", "1 Pedro", 5, 7),
		Prayer:     "Senhor, entrego minhas preocupações em Tuas mãos. Acalma meu coração e me ajuda a confiar no Teu cuidado. Amém.",
	},
	Triste: {
		Label:      "tristeza",
		Devotional: "A tristeza não é sinal de pouca fé. O próprio Jesus chorou. Deus se aproxima de quem tem o coração quebrantado e transforma lágrimas em sementes de consolo.",
		Verse:      verse.New("Perto está o Senhor dos que têm o coração quebrantado e salva os contritos de espírito.", "Salmos", 34, 18),
		Prayer:     "Pai, console meu coração ferido. Que eu sinta a Tua presença nos momentos de dor e encontre alívio no Teu amor. Amém.",
	},
	Alegre: {
		Label:      "alegria",
		Devotional: "A alegria que vem de Deus não depende das circunstâncias. Celebre o que Ele tem feito e deixe que sua gratidão contagie quem está ao seu redor.",
		Verse:      verse.New("Este é o dia que fez o Senhor; regozijemo-nos e alegremo-nos nele.", "Salmos", 118, 24),
		Prayer:     "Obrigado, Senhor, pela alegria deste dia. Que eu nunca esqueça que toda boa dádiva vem de Ti. Amém.",
	},
	Medo: {
		Label:      "medo",
		Devotional: "O medo grita, mas a promessa de Deus fala mais alto: Ele está com você. Coragem não é ausência de medo, é confiar que você não caminha sozinho.",
		Verse:      verse.New("Não temas, porque eu sou contigo; não te assombres, porque eu sou o teu Deus.", "Isaías", 41, 10),
		Prayer:     "Deus, quando o medo me cercar, lembra-me de que Tu és maior que qualquer ameaça. Fortalece minha fé. Amém.",
	},
	Grato: {
		Label:      "gratidão",
		Devotional: "A gratidão abre os olhos para as bênçãos que a pressa esconde. Agradecer é reconhecer a mão de Deus em cada detalhe da sua história.",
		Verse:      verse.New("Em tudo dai graças, porque esta é a vontade de Deus em Cristo Jesus para convosco.", "1 Tessalonicenses", 5, 18),
		Prayer:     "Senhor, obrigado por tudo o que tens feito. Que minha vida seja uma resposta de gratidão ao Teu amor. Amém.",
	},
	Cansado: {
		Label:      "cansaço",
		Devotional: "O cansaço do corpo e da alma encontra descanso em Jesus. Ele não exige que você chegue inteiro, apenas que venha. O descanso dEle restaura.",
		Verse:      verse.New("Vinde a mim, todos os que estais cansados e oprimidos, e eu vos aliviarei.", "Mateus", 11, 28),
		Prayer:     "Jesus, estou cansado. Renova minhas forças e me ensina a descansar em Ti. Amém.",
	},
	Sozinho: {
		Label:      "solidão",
		Devotional: "Mesmo quando ninguém parece perceber você, Deus vê, conhece e permanece. A solidão é o lugar onde a companhia dEle se torna mais real.",
		Verse:      verse.New("Não te deixarei, nem te desampararei.", "Hebreus", 13, 5),
		Prayer:     "Pai, quando eu me sentir só, lembra-me de que Tu estás comigo todos os dias. Preenche meu coração com a Tua presença. Amém.",
	},
	Irritado: {
		Label:      "irritação",
		Devotional: "A raiva avisa que algo feriu você, mas não precisa governar suas atitudes. Entregue a Deus o que provocou essa dor e deixe que Ele trate o seu coração.",
		Verse:      verse.New("Irai-vos e não pequeis; não se ponha o sol sobre a vossa ira.", "Efésios", 4, 26),
		Prayer:     "Senhor, acalma meu coração irritado. Tira de mim a amargura e me ajuda a perdoar como Tu me perdoas. Amém.",
	},
	Confiante: {
		Label:      "confiança",
		Devotional: "A confiança cresce quando lembramos de quem Deus é. Siga em frente: quem confia no Senhor não será envergonhado.",
		Verse:      verse.New("Confia no Senhor de todo o teu coração e não te estribes no teu próprio entendimento.", "Provérbios", 3, 5),
		Prayer:     "Deus, firmo minha confiança em Ti. Dirige meus passos e realiza os Teus planos na minha vida. Amém.",
	},
}

// Lookup returns the curated entry for the category, falling back to the
// default category when the name is unknown.
func Lookup(c Category) Entry {
	if entry, ok := table[c]; ok {
		return entry
	}
	return table[Default]
}

// Known reports whether the category exists in the curated table.
func Known(c Category) bool {
	_, ok := table[c]
	return ok
}

// Prayers is the shared curated prayer pool attached to replies that have no
// category-specific prayer.
var Prayers = []string{
	"Senhor, obrigado por mais um dia. Guia meus passos, guarda meu coração e me ajuda a confiar em Ti em todas as coisas. Amém.",
	"Pai celestial, derrama a Tua paz sobre mim. Que eu sinta o Teu amor e leve esperança a quem está ao meu redor. Amém.",
	"Deus, entrego a Ti as minhas lutas. Dá-me sabedoria nas decisões e força para perseverar. Em nome de Jesus, amém.",
	"Jesus, obrigado pelo Teu sacrifício e pelo Teu amor. Renova minha fé e me aproxima de Ti a cada dia. Amém.",
	"Espírito Santo, consola meu coração e me ensina a ouvir a Tua voz. Que a Tua vontade seja feita em minha vida. Amém.",
}
