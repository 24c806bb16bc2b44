package verse

// Fallback is the curated offline verse list (Almeida wording). The daily
// verse is picked from this list by day of year, and the random mode lands
// here whenever every remote provider fails.
var Fallback = []Verse{
	New("Porque Deus amou o mundo de tal maneira que deu o seu Filho unigênito, para que todo aquele que nele crê não pereça, mas tenha a vida eterna.", "João", 3, 16),
	New("O Senhor é o meu pastor; nada me faltará.", "Salmos", 23, 1),
	New("Tudo posso naquele que me fortalece.", "Filipenses", 4, 13),
	New("Entrega o teu caminho ao Senhor; confia nele, e ele o fará.", "Salmos", 37, 5),
	New("Não temas, porque eu sou contigo; não te assombres, porque eu sou o teu Deus.", "Isaías", 41, 10),
	New("Vinde a mim, todos os que estais cansados e oprimidos, e eu vos aliviarei.", "Mateus", 11, 28),
	New("Lançando sobre ele toda a vossa ansiedade, porque ele tem cuidado de vós.", "1 Pedro", 5, 7),
	New("O choro pode durar uma noite, mas a alegria vem pela manhã.", "Salmos", 30, 5),
	New("Porque eu bem sei os pensamentos que tenho a vosso respeito, diz o Senhor; pensamentos de paz e não de mal, para vos dar o fim que esperais.", "Jeremias", 29, 11),
	New("Deixo-vos a paz, a minha paz vos dou; não vo-la dou como o mundo a dá.", "João", 14, 27),
	New("Confia no Senhor de todo o teu coração e não te estribes no teu próprio entendimento.", "Provérbios", 3, 5),
	New("Deus é o nosso refúgio e fortaleza, socorro bem presente na angústia.", "Salmos", 46, 1),
	New("E sabemos que todas as coisas contribuem juntamente para o bem daqueles que amam a Deus.", "Romanos", 8, 28),
	New("Alegrai-vos sempre no Senhor; outra vez digo, alegrai-vos.", "Filipenses", 4, 4),
	New("O Senhor é a minha luz e a minha salvação; a quem temerei?", "Salmos", 27, 1),
	New("Bem-aventurados os que choram, porque eles serão consolados.", "Mateus", 5, 4),
	New("Esperei com paciência no Senhor, e ele se inclinou para mim, e ouviu o meu clamor.", "Salmos", 40, 1),
	New("Mas os que esperam no Senhor renovarão as suas forças, subirão com asas como águias.", "Isaías", 40, 31),
	New("Perto está o Senhor dos que têm o coração quebrantado e salva os contritos de espírito.", "Salmos", 34, 18),
	New("Não se turbe o vosso coração; credes em Deus, crede também em mim.", "João", 14, 1),
	New("Este é o dia que fez o Senhor; regozijemo-nos e alegremo-nos nele.", "Salmos", 118, 24),
	New("Buscai primeiro o reino de Deus, e a sua justiça, e todas estas coisas vos serão acrescentadas.", "Mateus", 6, 33),
	New("A tua palavra é lâmpada para os meus pés e luz para o meu caminho.", "Salmos", 119, 105),
	New("Sede fortes e corajosos; não temais, nem vos atemorizeis diante deles; porque o Senhor, teu Deus, é o que vai contigo.", "Deuteronômio", 31, 6),
	New("Em tudo dai graças, porque esta é a vontade de Deus em Cristo Jesus para convosco.", "1 Tessalonicenses", 5, 18),
	New("O nome do Senhor é uma torre forte; para ela corre o justo e está seguro.", "Provérbios", 18, 10),
	New("Ainda que eu andasse pelo vale da sombra da morte, não temeria mal algum, porque tu estás comigo.", "Salmos", 23, 4),
	New("Porque pela graça sois salvos, por meio da fé; e isso não vem de vós; é dom de Deus.", "Efésios", 2, 8),
	New("Orai sem cessar.", "1 Tessalonicenses", 5, 17),
	New("E a paz de Deus, que excede todo o entendimento, guardará os vossos corações e os vossos sentimentos em Cristo Jesus.", "Filipenses", 4, 7),
}
