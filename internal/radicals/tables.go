package radicals

// variantToMain maps positional variant forms to their main Kangxi radical.
// Variants appear only inside compound characters and are assumed already
// simplified.
var variantToMain = map[string]string{
	"亻": "人", // person side form
	"刂": "刀", // knife side form
	"氵": "水", // water side form
	"灬": "火", // fire bottom form
	"扌": "手", // hand side form
	"忄": "心", // heart side form
	"犭": "犬", // dog side form
	"礻": "示", // altar side form
	"衤": "衣", // clothes side form
	"纟": "糸", // silk side form
	"钅": "金", // metal side form
	"饣": "食", // food side form
	"讠": "言", // speech side form
	"阝": "阜", // mound/city side form (can be 阜 or 邑)
	"罒": "网", // net top form
	"⺮": "竹", // bamboo top form
	"⺶": "羊", // sheep top form
	"⺼": "月", // meat/moon side form
	"爫": "爪", // claw top form
	"⻊": "足", // foot side form
}

// traditionalForms maps simplified radicals to their traditional glyph.
// Used only to annotate entries, never to replace the simplified form.
var traditionalForms = map[string]TraditionalForm{
	"讠": {Glyph: "言", Note: "speech radical"},
	"钅": {Glyph: "金", Note: "metal radical"},
	"饣": {Glyph: "食", Note: "food radical"},
	"纟": {Glyph: "糸", Note: "silk radical"},
	"车": {Glyph: "車", Note: "cart/vehicle"},
	"贝": {Glyph: "貝", Note: "shell/money"},
	"见": {Glyph: "見", Note: "see"},
	"门": {Glyph: "門", Note: "gate/door"},
	"马": {Glyph: "馬", Note: "horse"},
	"鱼": {Glyph: "魚", Note: "fish"},
	"鸟": {Glyph: "鳥", Note: "bird"},
	"齿": {Glyph: "齒", Note: "tooth"},
	"龙": {Glyph: "龍", Note: "dragon"},
	"龟": {Glyph: "龜", Note: "turtle"},
	"页": {Glyph: "頁", Note: "page/leaf"},
	"风": {Glyph: "風", Note: "wind"},
	"飞": {Glyph: "飛", Note: "fly"},
	"长": {Glyph: "長", Note: "long"},
	"韦": {Glyph: "韋", Note: "tanned leather"},
	"麦": {Glyph: "麥", Note: "wheat"},
	"黄": {Glyph: "黃", Note: "yellow"},
	"齐": {Glyph: "齊", Note: "even/neat"},
	"辶": {Glyph: "辵", Note: "walk/move"},
}

// VariantTarget returns the main radical a variant form maps to.
func VariantTarget(glyph string) (string, bool) {
	main, ok := variantToMain[glyph]
	return main, ok
}

// Traditional returns the traditional-form annotation for a simplified glyph.
func Traditional(glyph string) (TraditionalForm, bool) {
	tf, ok := traditionalForms[glyph]
	return tf, ok
}
