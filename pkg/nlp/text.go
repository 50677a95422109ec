package nlp

import (
	"regexp"
	"strings"
)

// reToken — два и более словесных символа, шаблон токена TF-IDF векторизатора по умолчанию.
var reToken = regexp.MustCompile(`\b\w\w+\b`)

// Tokenize разбивает очищенный текст на токены векторизатора.
// Очищенный текст ASCII, поэтому \w и \b из RE2 совпадают с токенизатором обучения.
func Tokenize(s string, lowercase bool) []string {
	if lowercase {
		s = strings.ToLower(s)
	}
	return reToken.FindAllString(s, -1)
}

// NGrams строит n-граммы слов длиной [minN, maxN], соединённые одним пробелом.
// Стоп-слова нужно убрать до вызова.
func NGrams(tokens []string, minN, maxN int) []string {
	if minN <= 0 {
		minN = 1
	}
	if maxN < minN {
		maxN = minN
	}
	if minN == 1 && maxN == 1 {
		return tokens
	}
	var out []string
	if minN == 1 {
		out = append(out, tokens...)
		minN = 2
	}
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
