// Пакет layout — раскладка текста по сетке фиксированной ширины.
// Чистые функции без ввода-вывода; ширина считается в символах (рунах).
// Ширина W < 1 — некорректный вход, его отсекает валидация профиля.
package layout

import (
	"strings"
	"unicode/utf8"
)

const (
	HeavyChar = '='
	LightChar = '-'
)

// Len — ширина строки в символах сетки.
func Len(s string) int { return utf8.RuneCountInString(s) }

// Pair — L слева, R справа в пределах W.
// Если len(L)+len(R) < W — одна строка ровно W символов.
// Иначе L отдельной строкой (с переносом, если шире W), а R — следующей строкой, прижатой вправо.
func Pair(width int, left, right string) []string {
	l, r := Len(left), Len(right)
	if l+r < width {
		return []string{left + spaces(width-l-r) + right}
	}
	out := []string{left}
	if l > width {
		out = Wrap(width, left)
	}
	return append(out, Right(width, right))
}

// Right — один фрагмент, прижатый вправо; отступ max(W-len(s), 0).
func Right(width int, s string) string {
	return spaces(width-Len(s)) + s
}

// Divider — разделитель из символа ch ровно W раз.
func Divider(width int, ch rune) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(string(ch), width)
}

func Heavy(width int) string { return Divider(width, HeavyChar) }
func Light(width int) string { return Divider(width, LightChar) }

// Wrap — перенос по словам без обрезки.
func Wrap(width int, s string) []string {
	return WrapIndent(width, "", s)
}

// WrapIndent — перенос по словам; каждая строка начинается с indent.
// Слова длиннее доступной ширины режутся жёстко.
func WrapIndent(width int, indent, s string) []string {
	avail := width - Len(indent)
	if avail < 1 {
		// отступ съел всю ширину — печатаем без него
		indent, avail = "", width
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{indent}
	}

	var (
		lines []string
		cur   []rune
	)
	flush := func() {
		lines = append(lines, indent+string(cur))
		cur = cur[:0]
	}

	for _, w := range words {
		word := []rune(w)
		switch {
		case len(cur) == 0:
		case len(cur)+1+len(word) <= avail:
			cur = append(cur, ' ')
		default:
			flush()
		}
		for len(word) > avail {
			if len(cur) > 0 {
				flush()
			}
			lines = append(lines, indent+string(word[:avail]))
			word = word[avail:]
		}
		cur = append(cur, word...)
	}
	if len(cur) > 0 {
		flush()
	}
	return lines
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
