package token

// Shared escape-aware scanners. The tokenizer only cuts clause lines
// into regions; these helpers let the clause builders cut those
// regions further without re-deriving escape handling each time.

// ScanQuoted scans a double-quoted string at the start of d. It
// returns the raw inner bytes, still escaped, and the total number of
// bytes consumed including both quotes. at is the chunk offset of
// d[0], used for error positions.
func ScanQuoted(d []byte, pd *PosDoc, at int) ([]byte, int, error) {
	if len(d) == 0 || d[0] != '"' {
		return nil, 0, ExpectedErr("'\"'", pd.Pos(at))
	}
	esc := false
	for i := 1; i < len(d); i++ {
		if esc {
			esc = false
			continue
		}
		switch d[i] {
		case '\\':
			esc = true
		case '"':
			return d[1:i], i + 1, nil
		}
	}
	return nil, 0, ExpectedErr("closing '\"'", pd.Pos(at))
}

// ScanBracketList scans a '['...']' list at the start of d, returning
// the raw inner bytes and the total consumed length. Quotes and
// escapes inside the list are respected, so a ']' inside a quoted
// description does not terminate it.
func ScanBracketList(d []byte, pd *PosDoc, at int) ([]byte, int, error) {
	if len(d) == 0 || d[0] != '[' {
		return nil, 0, ExpectedErr("'['", pd.Pos(at))
	}
	esc := false
	inQuote := false
	for i := 1; i < len(d); i++ {
		if esc {
			esc = false
			continue
		}
		switch d[i] {
		case '\\':
			esc = true
		case '"':
			inQuote = !inQuote
		case ']':
			if !inQuote {
				return d[1:i], i + 1, nil
			}
		}
	}
	return nil, 0, ExpectedErr("']' closing list", pd.Pos(at))
}

// SplitList splits the inner bytes of a bracket list on top-level
// commas, trimming blanks around each element. Commas inside quoted
// strings or behind a backslash do not split. Offsets of each element
// relative to d are returned alongside, for error positions.
func SplitList(d []byte) ([][]byte, []int) {
	var elems [][]byte
	var offs []int
	start := 0
	esc := false
	inQuote := false
	flush := func(end int) {
		e, off := trimBlank(d, start, end)
		if len(e) > 0 {
			elems = append(elems, e)
			offs = append(offs, off)
		}
		start = end + 1
	}
	for i := 0; i < len(d); i++ {
		if esc {
			esc = false
			continue
		}
		switch d[i] {
		case '\\':
			esc = true
		case '"':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				flush(i)
			}
		}
	}
	flush(len(d))
	return elems, offs
}

// ScanWord scans a blank-delimited word at the start of d, honoring
// backslash escapes so `part\ of` stays one word. It returns the word
// and the number of bytes consumed.
func ScanWord(d []byte) ([]byte, int) {
	esc := false
	for i := 0; i < len(d); i++ {
		if esc {
			esc = false
			continue
		}
		switch d[i] {
		case '\\':
			esc = true
		case ' ', '\t':
			return d[:i], i
		}
	}
	return d, len(d)
}

// SkipBlank returns the index of the first byte of d at or after i
// that is not a space or tab.
func SkipBlank(d []byte, i int) int {
	for i < len(d) && (d[i] == ' ' || d[i] == '\t') {
		i++
	}
	return i
}

func trimBlank(d []byte, start, end int) ([]byte, int) {
	for start < end && (d[start] == ' ' || d[start] == '\t') {
		start++
	}
	for end > start && (d[end-1] == ' ' || d[end-1] == '\t') {
		end--
	}
	return d[start:end], start
}
