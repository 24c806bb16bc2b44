package assistant

import (
	"github.com/feemjesusbr/backend/internal/analysis/message"
	"github.com/feemjesusbr/backend/internal/model/emotion"
)

// fallbackResponses holds the curated pastoral answers used when the remote
// model is unavailable or returns unusable text, keyed by message intent.
var fallbackResponses = map[message.Intent][]string{
	message.Greeting: {
		"A paz do Senhor! Que bom ter você aqui. Como posso abençoar o seu dia hoje?",
		"Olá! Deus te abençoe. Estou aqui para conversar, orar com você e compartilhar a Palavra.",
		"Seja bem-vindo! Que a graça de Jesus esteja com você. Em que posso ajudar?",
	},
	message.PrayerRequest: {
		"Vou orar por você agora mesmo. Deus ouve cada palavra do seu coração, mesmo as que você não consegue dizer.",
		"Que privilégio orar com você. Apresente seu pedido a Deus com confiança, porque Ele se importa com cada detalhe.",
		"Estou em oração por você. Lembre-se: a oração do justo pode muito em seus efeitos. Deus está ouvindo.",
	},
	message.Comfort: {
		"Sinto muito pela sua dor. Deus está perto dos que têm o coração quebrantado, e Ele está perto de você agora.",
		"Você não está sozinho nessa tristeza. Jesus conhece a sua dor e caminha com você em cada passo.",
		"Chorar também é oração. Derrame seu coração diante de Deus; Ele recolhe cada lágrima e promete consolo.",
	},
	message.Anxiety: {
		"Respire fundo. Deus já está no seu amanhã, e Ele cuida de você hoje. Entregue a Ele essa preocupação.",
		"A ansiedade aperta, mas a promessa é maior: lance sobre Deus toda a sua ansiedade, porque Ele tem cuidado de você.",
		"Um passo de cada vez, com Deus ao seu lado. Ele não prometeu ausência de lutas, mas prometeu estar com você nelas.",
	},
	message.Doubt: {
		"Buscar direção já é um ato de fé. Peça sabedoria a Deus; Ele dá a todos liberalmente e não lança em rosto.",
		"Quando o caminho parece confuso, confie: Deus endireita as veredas de quem O reconhece em todos os seus caminhos.",
		"Não tenha pressa. Ore, busque a Palavra e dê o próximo passo pequeno. Deus dirige quem se deixa dirigir.",
	},
	message.Gratitude: {
		"Glória a Deus! A gratidão é a memória do coração. Que alegria celebrar com você o que Ele tem feito.",
		"Amém! Todo bom presente vem do alto. Continue contando as bênçãos, porque elas são novas a cada manhã.",
		"Deus é fiel! Que o seu testemunho de gratidão encoraje outras pessoas a confiar nEle também.",
	},
	message.General: {
		"Estou aqui para caminhar com você. Conte-me o que está no seu coração, e vamos buscar juntos a direção de Deus.",
		"Deus tem um cuidado especial por você. Seja qual for a situação, a Palavra dEle tem uma resposta de esperança.",
		"Que a graça de Jesus renove suas forças hoje. Se quiser, posso compartilhar um versículo ou orar com você.",
	},
}

// intentCategory maps message intents to the curated emotion category whose
// verse best accompanies the reply. Intents without a natural category get a
// random verse instead.
var intentCategory = map[message.Intent]emotion.Category{
	message.Anxiety:   emotion.Ansioso,
	message.Comfort:   emotion.Triste,
	message.Gratitude: emotion.Grato,
	message.Doubt:     emotion.Confiante,
	message.Greeting:  emotion.Alegre,
}
