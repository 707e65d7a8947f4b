package font

import "golang.org/x/text/width"

// fallbackRune maps runes outside a typical ASCII atlas to a close ASCII
// equivalent. Full-width forms fold to their narrow counterparts; a few
// common symbols get a visual stand-in. Other runes are returned as is.
func fallbackRune(r rune) rune {
	if r >= 32 && r <= 126 {
		return r
	}
	if folded := width.LookupRune(r).Folded(); folded != 0 {
		r = folded
		if r >= 32 && r <= 126 {
			return r
		}
	}
	switch r {
	case '►', '▶', '▸', '→', '⯈':
		return '>'
	case '◄', '◀', '◂', '←', '⯇':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆', '·':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘', '×':
		return 'x'
	case '—', '–', '−':
		return '-'
	case '‘', '’':
		return '\''
	case '“', '”':
		return '"'
	case '\t':
		return ' '
	default:
		return r
	}
}
