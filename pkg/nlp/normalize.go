package nlp

import (
	"regexp"
	"strings"
)

// space и nonSpace повторяют юникодный класс пробельных символов (str.isspace),
// а не ASCII-класс \s из RE2: иначе \v и U+001C..U+001F переживали бы схлопывание.
const (
	space    = `\t\n\v\f\r\x{1c}-\x{1f} \x{85}\x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}`
	wordChar = `\p{L}\p{N}_`
)

var (
	reURL      = regexp.MustCompile(`http[^` + space + `]+[` + space + `]`)
	reRetweet  = regexp.MustCompile(`RT|cc`)
	reMention  = regexp.MustCompile(`@[^` + space + `]+`)
	reCRLF     = regexp.MustCompile(`\r\n`)
	reSpecial  = regexp.MustCompile(`[^` + wordChar + space + `]`)
	reNonASCII = regexp.MustCompile(`[^\x00-\x7F]+`)
	reHashtag  = regexp.MustCompile(`#[^` + space + `]+`)
	reSpaces   = regexp.MustCompile(`[` + space + `]+`)
)

// CleanResume приводит извлечённый текст резюме к виду, на котором обучен векторизатор.
//
// Шаги выполняются строго по порядку, каждый над результатом предыдущего:
// ссылки (вместе с одним пробелом после), "RT"/"cc", упоминания, CRLF,
// спецсимволы, не-ASCII, хэштеги, схлопывание пробелов и trim.
// Хэштеги удаляются после спецсимволов, поэтому к шагу 7 '#' уже не остаётся;
// порядок менять нельзя, иначе изменится вход модели.
func CleanResume(text string) string {
	text = reURL.ReplaceAllString(text, "")
	text = reRetweet.ReplaceAllString(text, "")
	text = reMention.ReplaceAllString(text, "")
	text = reCRLF.ReplaceAllString(text, " ")
	text = reSpecial.ReplaceAllString(text, "")
	text = reNonASCII.ReplaceAllString(text, "")
	text = reHashtag.ReplaceAllString(text, "")
	text = reSpaces.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
