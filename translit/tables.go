package translit

import "sync"

// mapping lists the source characters/clusters collapsing to one ASCII target.
type mapping struct {
	to   string
	from []string
}

var (
	buildOnce sync.Once
	generic   []mapping
	languages map[string][]mapping
)

// tables returns the process-wide transliteration tables, building them on
// first use. The build runs at most once; afterwards both tables are
// read-only.
func tables() ([]mapping, map[string][]mapping) {
	buildOnce.Do(build)
	return generic, languages
}

func build() {
	languages = map[string][]mapping{
		"de": {
			{"ae", []string{"ä"}},
			{"oe", []string{"ö"}},
			{"ue", []string{"ü"}},
			{"AE", []string{"Ä"}},
			{"OE", []string{"Ö"}},
			{"UE", []string{"Ü"}},
		},
		"bg": {
			{"h", []string{"х"}},
			{"H", []string{"Х"}},
			{"sht", []string{"щ"}},
			{"SHT", []string{"Щ"}},
			{"a", []string{"ъ"}},
			{"A", []string{"Ъ"}},
			{"y", []string{"ь"}},
			{"Y", []string{"Ь"}},
		},
	}

	// Ordering is part of the contract: multi-character targets whose sources
	// could also feed a single-letter target must come first, and the table is
	// iterated front to back on every pass.
	generic = []mapping{
		{"0", []string{"°", "₀", "۰", "０"}},
		{"1", []string{"¹", "₁", "۱", "１"}},
		{"2", []string{"²", "₂", "۲", "２"}},
		{"3", []string{"³", "₃", "۳", "３"}},
		{"4", []string{"⁴", "₄", "۴", "٤", "４"}},
		{"5", []string{"⁵", "₅", "۵", "٥", "５"}},
		{"6", []string{"⁶", "₆", "۶", "٦", "６"}},
		{"7", []string{"⁷", "₇", "۷", "７"}},
		{"8", []string{"⁸", "₈", "۸", "８"}},
		{"9", []string{"⁹", "₉", "۹", "９"}},

		{"sht", []string{"щ"}},
		{"SHT", []string{"Щ"}},
		{"ae", []string{"æ", "ǽ"}},
		{"AE", []string{"Æ", "Ǽ"}},
		{"ch", []string{"ч", "ჩ", "ჭ", "چ"}},
		{"Ch", []string{"Ч"}},
		{"dj", []string{"ђ"}},
		{"Dj", []string{"Ђ"}},
		{"dz", []string{"ѕ", "ძ"}},
		{"Dz", []string{"Ѕ"}},
		{"gh", []string{"غ", "ღ"}},
		{"ij", []string{"ĳ"}},
		{"IJ", []string{"Ĳ"}},
		{"kh", []string{"х", "خ", "ხ"}},
		{"Kh", []string{"Х"}},
		{"lj", []string{"љ"}},
		{"Lj", []string{"Љ"}},
		{"nj", []string{"њ"}},
		{"Nj", []string{"Њ"}},
		{"oe", []string{"œ"}},
		{"OE", []string{"Œ"}},
		{"ps", []string{"ψ"}},
		{"Ps", []string{"Ψ"}},
		{"sh", []string{"ш", "შ", "ش"}},
		{"Sh", []string{"Ш"}},
		{"ss", []string{"ß"}},
		{"SS", []string{"ẞ"}},
		{"th", []string{"þ", "ϑ", "ث", "ذ", "ظ"}},
		{"Th", []string{"Þ", "Θ"}},
		{"ts", []string{"ц", "ც", "წ"}},
		{"Ts", []string{"Ц"}},
		{"ya", []string{"я"}},
		{"Ya", []string{"Я"}},
		{"yu", []string{"ю"}},
		{"Yu", []string{"Ю"}},
		{"zh", []string{"ж", "ჟ", "ژ"}},
		{"Zh", []string{"Ж"}},
		{"(c)", []string{"©"}},

		{"a", []string{
			"à", "á", "â", "ã", "å", "ā", "ą", "ă", "ǎ", "ǻ", "ª",
			"α", "ά", "а", "ا", "أ", "ა", "अ", "ａ", "ä",
		}},
		{"b", []string{"б", "β", "ب", "ბ", "ｂ"}},
		{"c", []string{"ç", "ć", "č", "ĉ", "ċ", "ｃ"}},
		{"d", []string{"ď", "đ", "ð", "д", "δ", "د", "ض", "დ", "ｄ"}},
		{"e", []string{
			"è", "é", "ê", "ë", "ē", "ę", "ě", "ĕ", "ė",
			"ε", "έ", "е", "ё", "э", "є", "ə", "ე", "ｅ",
		}},
		{"f", []string{"ф", "φ", "ف", "ფ", "ｆ"}},
		{"g", []string{"ğ", "ĝ", "ġ", "ģ", "г", "ґ", "γ", "گ", "გ", "ｇ"}},
		{"h", []string{"ĥ", "ħ", "ه", "ჰ", "ｈ"}},
		{"i", []string{
			"ì", "í", "î", "ï", "ī", "ĩ", "ĭ", "į", "ı", "ǐ",
			"ι", "ί", "ϊ", "и", "і", "ї", "ი", "ｉ",
		}},
		{"j", []string{"ĵ", "ј", "ჯ", "ｊ"}},
		{"k", []string{"ķ", "ĸ", "к", "κ", "ك", "ک", "კ", "ქ", "ｋ"}},
		{"l", []string{"ł", "ľ", "ĺ", "ļ", "л", "λ", "ل", "ლ", "ｌ"}},
		{"m", []string{"м", "μ", "م", "მ", "ｍ"}},
		{"n", []string{"ñ", "ń", "ň", "ņ", "ŉ", "н", "ν", "ن", "ნ", "ｎ"}},
		{"o", []string{
			"ò", "ó", "ô", "õ", "ø", "ō", "ő", "ŏ", "ǒ", "º",
			"ο", "ό", "ω", "ώ", "о", "و", "ო", "ｏ", "ö",
		}},
		{"p", []string{"п", "π", "پ", "პ", "ｐ"}},
		{"q", []string{"ყ", "ｑ"}},
		{"r", []string{"ŕ", "ř", "ŗ", "р", "ρ", "ر", "რ", "ｒ"}},
		{"s", []string{"ś", "š", "ş", "ŝ", "ș", "с", "σ", "ς", "س", "ص", "ს", "ｓ"}},
		{"t", []string{"ť", "ţ", "ț", "т", "τ", "ت", "ط", "ტ", "თ", "ｔ"}},
		{"u", []string{
			"ù", "ú", "û", "ū", "ů", "ű", "ŭ", "ũ", "ų", "ǔ",
			"υ", "ύ", "ϋ", "у", "უ", "ｕ", "ü",
		}},
		{"v", []string{"в", "ვ", "ｖ"}},
		{"w", []string{"ŵ", "ｗ"}},
		{"x", []string{"χ", "ξ", "ｘ"}},
		{"y", []string{"ý", "ÿ", "ŷ", "й", "ы", "ي", "ی", "ｙ"}},
		{"z", []string{"ź", "ž", "ż", "з", "ζ", "ز", "ზ", "ｚ"}},

		{"A", []string{"À", "Á", "Â", "Ã", "Å", "Ā", "Ą", "Ă", "Ǎ", "Α", "Ά", "А", "Ａ", "Ä"}},
		{"B", []string{"Б", "Β", "Ｂ"}},
		{"C", []string{"Ç", "Ć", "Č", "Ĉ", "Ċ", "Ｃ"}},
		{"D", []string{"Ď", "Đ", "Ð", "Д", "Δ", "Ｄ"}},
		{"E", []string{"È", "É", "Ê", "Ë", "Ē", "Ę", "Ě", "Ĕ", "Ė", "Ε", "Έ", "Е", "Ё", "Э", "Є", "Ə", "Ｅ"}},
		{"F", []string{"Ф", "Φ", "Ｆ"}},
		{"G", []string{"Ğ", "Ĝ", "Ġ", "Ģ", "Г", "Ґ", "Γ", "Ｇ"}},
		{"H", []string{"Ĥ", "Ħ", "Ｈ"}},
		{"I", []string{"Ì", "Í", "Î", "Ï", "Ī", "Ĩ", "Ĭ", "Į", "İ", "Ǐ", "Ι", "Ί", "Ϊ", "И", "І", "Ї", "Ｉ"}},
		{"J", []string{"Ĵ", "Ј", "Ｊ"}},
		{"K", []string{"Ķ", "К", "Κ", "Ｋ"}},
		{"L", []string{"Ł", "Ľ", "Ĺ", "Ļ", "Л", "Λ", "Ｌ"}},
		{"M", []string{"М", "Μ", "Ｍ"}},
		{"N", []string{"Ñ", "Ń", "Ň", "Ņ", "Н", "Ν", "Ｎ"}},
		{"O", []string{"Ò", "Ó", "Ô", "Õ", "Ø", "Ō", "Ő", "Ŏ", "Ǒ", "Ο", "Ό", "Ω", "Ώ", "О", "Ｏ", "Ö"}},
		{"P", []string{"П", "Π", "Ｐ"}},
		{"Q", []string{"Ｑ"}},
		{"R", []string{"Ŕ", "Ř", "Ŗ", "Р", "Ρ", "Ｒ"}},
		{"S", []string{"Ś", "Š", "Ş", "Ŝ", "Ș", "С", "Σ", "Ｓ"}},
		{"T", []string{"Ť", "Ţ", "Ț", "Т", "Τ", "Ｔ"}},
		{"U", []string{"Ù", "Ú", "Û", "Ū", "Ů", "Ű", "Ŭ", "Ũ", "Ų", "Ǔ", "Υ", "Ύ", "Ϋ", "У", "Ｕ", "Ü"}},
		{"V", []string{"В", "Ｖ"}},
		{"W", []string{"Ŵ", "Ｗ"}},
		{"X", []string{"Χ", "Ξ", "Ｘ"}},
		{"Y", []string{"Ý", "Ŷ", "Ÿ", "Й", "Ы", "Ｙ"}},
		{"Z", []string{"Ź", "Ž", "Ż", "З", "Ζ", "Ｚ"}},

		{" ", []string{
			"\u00a0", "\u1680", "\u2000", "\u2001", "\u2002", "\u2003",
			"\u2004", "\u2005", "\u2006", "\u2007", "\u2008", "\u2009",
			"\u200a", "\u202f", "\u205f", "\u3000",
		}},
	}
}
