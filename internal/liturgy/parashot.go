package liturgy

import "strings"

// Weekly portions in reading order.
const (
	bereshit = iota
	noach
	lechLecha
	vayera
	chayeiSara
	toldot
	vayetzei
	vayishlach
	vayeshev
	miketz
	vayigash
	vayechi
	shemot
	vaera
	bo
	beshalach
	yitro
	mishpatim
	terumah
	tetzaveh
	kiTisa
	vayakhel
	pekudei
	vayikra
	tzav
	shmini
	tazria
	metzora
	achreiMot
	kedoshim
	emor
	behar
	bechukotai
	bamidbar
	nasso
	behaalotcha
	shlach
	korach
	chukat
	balak
	pinchas
	matot
	masei
	devarim
	vaetchanan
	eikev
	reeh
	shoftim
	kiTeitzei
	kiTavo
	nitzavim
	vayeilech
	haazinu
	vezotHaberakhah
)

var portionNames = [...]string{
	"בראשית", "נח", "לך לך", "וירא", "חיי שרה", "תולדות", "ויצא", "וישלח",
	"וישב", "מקץ", "ויגש", "ויחי", "שמות", "וארא", "בא", "בשלח", "יתרו",
	"משפטים", "תרומה", "תצוה", "כי תשא", "ויקהל", "פקודי", "ויקרא", "צו",
	"שמיני", "תזריע", "מצורע", "אחרי מות", "קדושים", "אמור", "בהר", "בחקתי",
	"במדבר", "נשא", "בהעלתך", "שלח", "קרח", "חקת", "בלק", "פינחס", "מטות",
	"מסעי", "דברים", "ואתחנן", "עקב", "ראה", "שופטים", "כי תצא", "כי תבוא",
	"נצבים", "וילך", "האזינו", "וזאת הברכה",
}

// reading is one Saturday's portion, or two read together.
type reading []int

// Label renders the reading as it is announced, e.g. "פרשת ויקהל-פקודי".
func (r reading) Label() string {
	names := make([]string, len(r))
	for i, p := range r {
		names[i] = portionNames[p]
	}
	return "פרשת " + strings.Join(names, "-")
}

func (r reading) contains(portion int) bool {
	for _, p := range r {
		if p == portion {
			return true
		}
	}
	return false
}
