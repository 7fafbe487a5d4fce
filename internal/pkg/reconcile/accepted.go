package reconcile

//LetterNames lists the accepted spoken forms per uppercase letter,
//including common transcription spellings and Korean renderings of the
//English letter names
var LetterNames = map[string][]string{
	"A": {"a", "ay", "에이"},
	"B": {"b", "bee", "비"},
	"C": {"c", "cee", "see", "씨"},
	"D": {"d", "dee", "디"},
	"E": {"e", "ee", "이"},
	"F": {"f", "eff", "에프"},
	"G": {"g", "gee", "지"},
	"H": {"h", "aitch", "haitch", "에이치"},
	"I": {"i", "eye", "아이"},
	"J": {"j", "jay", "제이"},
	"K": {"k", "kay", "케이"},
	"L": {"l", "ell", "엘"},
	"M": {"m", "em", "엠"},
	"N": {"n", "en", "엔"},
	"O": {"o", "oh", "오", "오우"},
	"P": {"p", "pee", "피"},
	"Q": {"q", "cue", "que", "큐"},
	"R": {"r", "ar", "알"},
	"S": {"s", "ess", "에스"},
	"T": {"t", "tee", "티"},
	"U": {"u", "you", "유"},
	"V": {"v", "vee", "브이"},
	"W": {"w", "double u", "doubleu", "더블유"},
	"X": {"x", "ex", "엑스"},
	"Y": {"y", "why", "와이"},
	"Z": {"z", "zee", "zed", "지", "제트"},
}
