package hazard

import "regexp"

// HazardStatement is one H-code with its English source text and Chinese
// rendering.
type HazardStatement struct {
	Code   string
	TextEN string
	TextZH string
}

var hazardCodePattern = regexp.MustCompile(`H\d{3}`)

// hazardStatementsZh maps H-codes to Traditional Chinese statement text.
var hazardStatementsZh = map[string]string{
	// Physical hazards
	"H200": "不穩定爆炸物",
	"H201": "爆炸物；整體爆炸危險",
	"H202": "爆炸物；嚴重拋射危險",
	"H203": "爆炸物；火災、爆炸或拋射危險",
	"H204": "火災或拋射危險",
	"H205": "遇火可能整體爆炸",
	"H220": "極易燃氣體",
	"H221": "易燃氣體",
	"H222": "極易燃氣溶膠",
	"H223": "易燃氣溶膠",
	"H224": "極易燃液體和蒸氣",
	"H225": "高度易燃液體和蒸氣",
	"H226": "易燃液體和蒸氣",
	"H227": "可燃液體",
	"H228": "易燃固體",
	"H229": "壓力容器：遇熱可能爆裂",
	"H230": "可能以爆炸方式反應，即使沒有空氣",
	"H231": "在高壓/高溫下可能以爆炸方式反應，即使沒有空氣",
	"H240": "遇熱可能爆炸",
	"H241": "遇熱可能起火或爆炸",
	"H242": "遇熱可能起火",
	"H250": "暴露在空氣中會自燃",
	"H251": "自熱；可能起火",
	"H252": "大量堆積時自熱；可能起火",
	"H260": "遇水放出易燃氣體，可能自燃",
	"H261": "遇水放出易燃氣體",
	"H270": "可能導致或加劇燃燒；氧化劑",
	"H271": "可能引起燃燒或爆炸；強氧化劑",
	"H272": "可能加劇燃燒；氧化劑",
	"H280": "內含高壓氣體；遇熱可能爆炸",
	"H281": "內含冷凍氣體；可能造成低溫灼傷",
	"H290": "可能腐蝕金屬",

	// Health hazards
	"H300": "吞食致命",
	"H301": "吞食有毒",
	"H302": "吞食有害",
	"H303": "吞食可能有害",
	"H304": "吞食並進入呼吸道可能致命",
	"H305": "吞食並進入呼吸道可能有害",
	"H310": "皮膚接觸致命",
	"H311": "皮膚接觸有毒",
	"H312": "皮膚接觸有害",
	"H313": "皮膚接觸可能有害",
	"H314": "造成嚴重皮膚灼傷和眼睛損傷",
	"H315": "造成皮膚刺激",
	"H316": "造成輕微皮膚刺激",
	"H317": "可能造成皮膚過敏反應",
	"H318": "造成嚴重眼睛損傷",
	"H319": "造成嚴重眼睛刺激",
	"H320": "造成眼睛刺激",
	"H330": "吸入致命",
	"H331": "吸入有毒",
	"H332": "吸入有害",
	"H333": "吸入可能有害",
	"H334": "吸入可能導致過敏或哮喘症狀或呼吸困難",
	"H335": "可能造成呼吸道刺激",
	"H336": "可能造成昏睡或頭暈",
	"H340": "可能導致遺傳性缺陷",
	"H341": "懷疑會導致遺傳性缺陷",
	"H350": "可能致癌",
	"H351": "懷疑會致癌",
	"H360": "可能損害生育能力或胎兒",
	"H361": "懷疑會損害生育能力或胎兒",
	"H362": "可能對哺乳兒童造成傷害",
	"H370": "會對器官造成損害",
	"H371": "可能會對器官造成損害",
	"H372": "長期或反覆暴露會對器官造成損害",
	"H373": "長期或反覆暴露可能會對器官造成損害",

	// Environmental hazards
	"H400": "對水生生物毒性非常大",
	"H401": "對水生生物有毒",
	"H402": "對水生生物有害",
	"H410": "對水生生物毒性非常大並具有長期持續影響",
	"H411": "對水生生物有毒並具有長期持續影響",
	"H412": "對水生生物有害並具有長期持續影響",
	"H413": "可能對水生生物造成長期持續有害影響",
	"H420": "破壞高層大氣中的臭氧，危害公眾健康和環境",
}

// TranslateHazardCode returns the Chinese statement for code.
func TranslateHazardCode(code string) (string, bool) {
	zh, ok := hazardStatementsZh[code]
	return zh, ok
}

// ParseHazardStatement builds a statement from upstream text such as
// "H225 (100%): Highly Flammable liquid and vapor [Danger ...]".  The full
// text is kept as TextEN; TextZH falls back to it for untranslated codes.
func ParseHazardStatement(text string) (HazardStatement, bool) {
	code := hazardCodePattern.FindString(text)
	if code == "" {
		return HazardStatement{}, false
	}
	zh, ok := hazardStatementsZh[code]
	if !ok {
		zh = text
	}
	return HazardStatement{Code: code, TextEN: text, TextZH: zh}, true
}
