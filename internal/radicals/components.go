package radicals

// commonComponents lists glyphs that are not official radicals but recur
// across vocabulary as structural components, with their reading and gloss.
var commonComponents = map[string]ComponentInfo{
	// Basic stroke-like components
	"乀": {"fú", "left-falling stroke"},
	"乂": {"yì", "to mow; to cut"},
	"乍": {"zhà", "suddenly; at first"},
	"乎": {"hū", "question particle"},
	"乚": {"yǐ", "hidden; second"},
	"乞": {"qǐ", "to beg"},
	"乡": {"xiāng", "village; countryside"},

	// Common character components
	"也": {"yě", "also; too"},
	"了": {"le", "completed action marker"},
	"于": {"yú", "at; in; to"},
	"为": {"wèi", "for; to be"},
	"上": {"shàng", "up; above"},
	"下": {"xià", "down; below"},
	"不": {"bù", "not; no"},
	"丁": {"dīng", "male adult; nail"},
	"三": {"sān", "three"},
	"东": {"dōng", "east"},
	"中": {"zhōng", "middle; center"},
	"交": {"jiāo", "to hand over; to intersect"},
	"亥": {"hài", "12th earthly branch"},
	"今": {"jīn", "now; today"},
	"从": {"cóng", "from; to follow"},
	"仑": {"lún", "logical; arrange"},
	"以": {"yǐ", "by means of; because"},
	"任": {"rèn", "to appoint; responsibility"},
	"何": {"hé", "what; which"},
	"作": {"zuò", "to do; to make"},
	"候": {"hòu", "to wait; time"},
	"倠": {"suī", "name component"},
	"兄": {"xiōng", "elder brother"},
	"兑": {"duì", "to exchange"},
	"全": {"quán", "whole; complete"},
	"共": {"gòng", "together; common"},
	"其": {"qí", "his; her; its"},
	"刃": {"rèn", "blade; edge"},
	"分": {"fēn", "to divide; minute"},
	"前": {"qián", "front; before"},
	"勺": {"sháo", "spoon; ladle"},
	"午": {"wǔ", "noon"},
	"原": {"yuán", "origin; source"},
	"反": {"fǎn", "opposite; to return"},
	"取": {"qǔ", "to take; to fetch"},
	"司": {"sī", "to manage; department"},
	"后": {"hòu", "after; behind"},
	"因": {"yīn", "because; cause"},
	"在": {"zài", "at; in"},
	"壬": {"rén", "9th heavenly stem"},
	"夬": {"guài", "to part; to decide"},
	"天": {"tiān", "sky; day"},
	"头": {"tóu", "head"},
	"完": {"wán", "complete; finish"},
	"实": {"shí", "real; solid"},
	"对": {"duì", "correct; pair"},
	"导": {"dǎo", "to guide; to lead"},
	"尔": {"ěr", "you (archaic)"},
	"尼": {"ní", "Buddhist nun"},
	"尽": {"jìn", "to exhaust; to the utmost"},
	"已": {"yǐ", "already"},
	"巴": {"bā", "hope; tail"},
	"常": {"cháng", "often; common"},
	"当": {"dāng", "to be; act as"},
	"往": {"wǎng", "to go; towards"},
	"必": {"bì", "must; certainly"},
	"时": {"shí", "time; hour"},
	"是": {"shì", "is; to be"},
	"正": {"zhèng", "upright; correct"},
	"此": {"cǐ", "this; these"},
	"每": {"měi", "every"},
	"关": {"guān", "shut; pass"},
	"故": {"gù", "therefore; reason"},
	"斩": {"zhǎn", "to chop; to behead"},
	"断": {"duàn", "to break; to judge"},
	"旦": {"dàn", "dawn; day"},
	"早": {"zǎo", "early; morning"},
	"明": {"míng", "bright; clear"},
	"显": {"xiǎn", "to show; obvious"},
	"景": {"jǐng", "scenery; view"},
	"曷": {"hé", "why; how"},
	"最": {"zuì", "most; -est"},
	"有": {"yǒu", "to have"},
	"本": {"běn", "root; origin; book classifier"},
	"束": {"shù", "bundle; to bind"},
	"析": {"xī", "to analyze"},
	"果": {"guǒ", "fruit; result"},
	"标": {"biāo", "mark; sign"},
	"根": {"gēn", "root; basis"},
	"法": {"fǎ", "law; method"},
	"点": {"diǎn", "dot; point"},
	"然": {"rán", "correct; so"},
	"王": {"wáng", "king"},
	"现": {"xiàn", "appear; present"},
	"由": {"yóu", "from; due to"},
	"电": {"diàn", "electricity"},
	"相": {"xiāng", "mutual"},
	"确": {"què", "true; certain"},
	"程": {"chéng", "journey; procedure"},
	"管": {"guǎn", "tube; to manage"},
	"系": {"xì", "system; to tie"},
	"终": {"zhōng", "end; finally"},
	"经": {"jīng", "to pass through; scripture"},
	"结": {"jié", "to tie; result"},
	"脑": {"nǎo", "brain"},
	"获": {"huò", "to obtain"},
	"表": {"biǎo", "surface; to express"},
	"观": {"guān", "to view; concept"},
	"解": {"jiě", "to untie; to explain"},
	"言": {"yán", "speech; word"},
	"证": {"zhèng", "to prove; evidence"},
	"责": {"zé", "duty; to blame"},
	"通": {"tōng", "to pass through"},
	"邦": {"bāng", "nation; country"},
	"采": {"cǎi", "to pick; to gather"},
	"释": {"shì", "to explain; to release"},
	"除": {"chú", "to remove; except"},
	"随": {"suí", "to follow"},
	"须": {"xū", "must; beard"},
	"验": {"yàn", "to examine; to test"},

	// Additional common components from vocabulary
	"个": {"gè", "general classifier"},
	"么": {"me", "suffix"},
	"井": {"jǐng", "well"},
	"元": {"yuán", "currency unit; first"},
	"云": {"yún", "cloud"},
	"五": {"wǔ", "five"},
	"六": {"liù", "six"},
	"七": {"qī", "seven"},
	"九": {"jiǔ", "nine"},
	"办": {"bàn", "to do; manage"},
	"去": {"qù", "to go"},
	"友": {"yǒu", "friend"},
	"发": {"fā", "send; emit"},
	"只": {"zhǐ", "only"},
	"可": {"kě", "can; able"},
	"台": {"tái", "platform"},
	"合": {"hé", "combine; fit"},
	"同": {"tóng", "same; together"},
	"名": {"míng", "name"},
	"回": {"huí", "return"},
	"多": {"duō", "many; much"},
	"太": {"tài", "too; very"},
	"少": {"shǎo", "few; little"},
	"平": {"píng", "flat; level"},
	"开": {"kāi", "open; start"},
	"才": {"cái", "talent; just now"},
	"找": {"zhǎo", "look for"},
	"把": {"bǎ", "grasp; hold"},
	"来": {"lái", "come"},
	"样": {"yàng", "appearance; shape"},
	"次": {"cì", "time; order"},
	"比": {"bǐ", "compare"},
	"的": {"de", "possessive particle"},
	"真": {"zhēn", "real; true"},
	"着": {"zhe", "aspect marker"},
	"种": {"zhǒng", "kind; type"},
	"空": {"kōng", "empty; air"},
	"第": {"dì", "prefix for ordinal numbers"},
	"等": {"děng", "wait; class"},
	"给": {"gěi", "give"},
	"美": {"měi", "beautiful"},
	"老": {"lǎo", "old"},
	"而": {"ér", "and; but"},
	"能": {"néng", "can; be able"},
	"自": {"zì", "self"},
	"西": {"xī", "west"},
	"要": {"yào", "want; need"},
	"认": {"rèn", "recognize"},
	"话": {"huà", "word; speech"},
	"说": {"shuō", "speak; say"},
	"象": {"xiàng", "elephant; image"},
	"起": {"qǐ", "rise; start"},
	"车": {"chē", "car; vehicle"},
	"边": {"biān", "side; edge"},
	"过": {"guò", "pass; cross"},
	"还": {"hái", "still; yet"},
	"进": {"jìn", "enter"},
	"道": {"dào", "way; path"},
	"那": {"nà", "that"},
	"里": {"lǐ", "inside"},
	"重": {"zhòng", "heavy"},
	"间": {"jiān", "between; room"},
	"难": {"nán", "difficult"},
	"面": {"miàn", "face; surface"},
	"高": {"gāo", "high; tall"},
}

// CommonComponent returns the reading/gloss for a common component glyph.
func CommonComponent(glyph string) (ComponentInfo, bool) {
	info, ok := commonComponents[glyph]
	return info, ok
}
