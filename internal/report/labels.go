package report

import (
	"github.com/alexiusacademia/gocfs/internal/verdict"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Languages a worksheet can be printed in. The first is the fallback.
var Languages = []language.Tag{
	language.English,
	language.Japanese,
	language.TraditionalChinese,
}

var matcher = language.NewMatcher(Languages)

// modeLabels names each failure mode on a worksheet.
var modeLabels = map[verdict.Mode]string{
	verdict.Bending:       "Bending",
	verdict.Shear:         "Shear",
	verdict.WebCrippling:  "Web crippling",
	verdict.Deflection:    "Deflection",
	verdict.Combined:      "Combined bending and axial load",
	verdict.HangerTension: "Hanger tension",
	verdict.AnchorPullOut: "Anchor pull-out",
}

// translations maps an English label to its Japanese and Traditional
// Chinese forms.
var translations = map[string][2]string{
	"Wall stud verification":          {"壁スタッドの検定", "牆立柱檢核"},
	"Ceiling system verification":     {"天井下地の検定", "天花板系統檢核"},
	"INPUT DATA":                      {"入力データ", "輸入資料"},
	"LOADS":                           {"荷重", "載重"},
	"CHECKS":                          {"検定", "檢核"},
	"RESULT":                          {"結果", "結果"},
	"Calculation id":                  {"計算ID", "計算編號"},
	"Section":                         {"断面", "斷面"},
	"Hanger":                          {"吊りボルト", "吊桿"},
	"Anchor":                          {"アンカー", "錨栓"},
	"Span (L)":                        {"スパン (L)", "跨度 (L)"},
	"Tributary width (Tw)":            {"負担幅 (Tw)", "負擔寬度 (Tw)"},
	"Bearing length (Nb)":             {"支圧長さ (Nb)", "承壓長度 (Nb)"},
	"Yield strength (Py)":             {"降伏強度 (Py)", "降伏強度 (Py)"},
	"Elastic modulus (E)":             {"弾性係数 (E)", "彈性模數 (E)"},
	"Material factor (γm)":            {"材料係数 (γm)", "材料係數 (γm)"},
	"Load factors":                    {"荷重係数", "載重係數"},
	"Deflection limit":                {"たわみ制限", "撓度限制"},
	"Wind pressure":                   {"風圧", "風壓"},
	"Imposed line load (W)":           {"積載線荷重 (W)", "活載線載重 (W)"},
	"Imposed load height (h)":         {"積載荷重の高さ (h)", "活載高度 (h)"},
	"Board layers":                    {"ボード枚数", "板層數"},
	"Board weight":                    {"ボード重量", "板重"},
	"Frame weight":                    {"下地重量", "骨架重量"},
	"Insulation":                      {"断熱材", "隔熱材"},
	"Fixture":                         {"取付物", "附掛物"},
	"Load case":                       {"荷重ケース", "載重組合"},
	"Ratio":                           {"比率", "比值"},
	"OK":                              {"OK", "OK"},
	"NOT OK":                          {"NG", "NG"},
	"ADEQUATE":                        {"適合", "合格"},
	"INADEQUATE":                      {"不適合", "不合格"},
	"Bending":                         {"曲げ", "彎曲"},
	"Shear":                           {"せん断", "剪力"},
	"Web crippling":                   {"ウェブクリップリング", "腹板壓曲"},
	"Deflection":                      {"たわみ", "撓度"},
	"Combined bending and axial load": {"曲げと軸力の組合せ", "彎曲與軸力組合"},
	"Hanger tension":                  {"吊りボルトの引張", "吊桿拉力"},
	"Anchor pull-out":                 {"アンカーの引抜き", "錨栓拉拔"},
	"All %d checks satisfied":         {"全 %d 項目を満足", "全部 %d 項檢核均滿足"},
	"Inadequate: %s":                  {"不適合: %s", "不合格: %s"},
}

var labels = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, t := range translations {
		if err := b.SetString(language.Japanese, key, t[0]); err != nil {
			panic(err)
		}
		if err := b.SetString(language.TraditionalChinese, key, t[1]); err != nil {
			panic(err)
		}
	}
	return b
}

// Printer returns a printer for lang, e.g. "ja" or "zh-Hant". Unknown or
// unsupported languages print in English.
func Printer(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	_, i, _ := matcher.Match(tag)
	return message.NewPrinter(Languages[i], message.Catalog(labels))
}
