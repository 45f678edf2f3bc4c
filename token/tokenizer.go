package token

import (
	"bytes"
	"fmt"
)

// Tokenize splits a whole OBO document into frames. The first frame is
// always the header frame, possibly with zero lines. Blank lines
// separate frames; a line whose first non-blank byte is '[' starts a
// new entity frame. Windows line endings and leading indentation
// inside frames are tolerated.
func Tokenize(doc []byte) ([]*Frame, error) {
	pd := NewPosDoc(doc, 1, 0)
	frames := []*Frame{{Kind: Header, Pos: pd.Pos(0)}}
	cur := frames[0]

	for i := 0; i < len(doc); {
		start := i
		line, next := nextLine(doc, i)
		i = next
		trimmed := bytes.TrimLeft(line, " \t")
		switch {
		case len(trimmed) == 0:
			// Frame separator, nothing to emit.
		case trimmed[0] == '!':
			// Full-line comment.
		case trimmed[0] == '[':
			at := start + (len(line) - len(trimmed))
			kind, err := frameKind(trimmed, pd, at)
			if err != nil {
				return nil, err
			}
			cur = &Frame{Kind: kind, Pos: pd.Pos(at)}
			frames = append(frames, cur)
		default:
			at := start + (len(line) - len(trimmed))
			ln, err := tokenizeLine(trimmed, pd, at)
			if err != nil {
				return nil, err
			}
			cur.Lines = append(cur.Lines, ln)
		}
	}
	return frames, nil
}

// TokenizeFrame tokenizes a single frame chunk cut out of a larger
// document. baseLine is the 1-based document line the chunk starts on
// and baseOff its absolute byte offset, so error positions land in
// document coordinates.
func TokenizeFrame(chunk []byte, baseLine, baseOff int) (*Frame, error) {
	pd := NewPosDoc(chunk, baseLine, baseOff)
	var frame *Frame

	for i := 0; i < len(chunk); {
		start := i
		line, next := nextLine(chunk, i)
		i = next
		trimmed := bytes.TrimLeft(line, " \t")
		switch {
		case len(trimmed) == 0:
		case trimmed[0] == '!':
		case trimmed[0] == '[':
			at := start + (len(line) - len(trimmed))
			if frame != nil {
				return nil, UnexpectedErr("frame start inside frame", pd.Pos(at))
			}
			kind, err := frameKind(trimmed, pd, at)
			if err != nil {
				return nil, err
			}
			frame = &Frame{Kind: kind, Pos: pd.Pos(at)}
		default:
			at := start + (len(line) - len(trimmed))
			if frame == nil {
				frame = &Frame{Kind: Header, Pos: pd.Pos(at)}
			}
			ln, err := tokenizeLine(trimmed, pd, at)
			if err != nil {
				return nil, err
			}
			frame.Lines = append(frame.Lines, ln)
		}
	}
	if frame == nil {
		frame = &Frame{Kind: Header, Pos: pd.Pos(0)}
	}
	return frame, nil
}

// nextLine returns the line starting at i without its terminator, and
// the index of the following line. A trailing '\r' is stripped so CRLF
// input tokenizes like LF input.
func nextLine(d []byte, i int) ([]byte, int) {
	j := bytes.IndexByte(d[i:], '\n')
	if j < 0 {
		return trimCR(d[i:]), len(d)
	}
	return trimCR(d[i : i+j]), i + j + 1
}

func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}

// frameKind reads a "[Term]"-style frame introduction line. line[0]
// must be '['; at is the chunk offset of that byte.
func frameKind(line []byte, pd *PosDoc, at int) (FrameKind, error) {
	end := bytes.IndexByte(line, ']')
	if end < 0 {
		return 0, ExpectedErr("']' closing frame type", pd.Pos(at))
	}
	rest := bytes.TrimLeft(line[end+1:], " \t")
	if len(rest) > 0 && rest[0] != '!' {
		return 0, UnexpectedErr(fmt.Sprintf("trailing %q after frame type", rest), pd.Pos(at+end+1))
	}
	switch string(line[1:end]) {
	case "Term":
		return Term, nil
	case "Typedef":
		return Typedef, nil
	case "Instance":
		return Instance, nil
	}
	return 0, UnexpectedErr(fmt.Sprintf("frame type %q", line[1:end]), pd.Pos(at+1))
}

// tokenizeLine dissects one clause line into tag, value region,
// qualifier block, and trailing comment. line must already be trimmed
// of leading blanks; at is the chunk offset of its first byte.
func tokenizeLine(line []byte, pd *PosDoc, at int) (Line, error) {
	tagEnd := -1
	esc := false
	for i, c := range line {
		if esc {
			esc = false
			continue
		}
		switch c {
		case '\\':
			esc = true
		case ':':
			tagEnd = i
		}
		if tagEnd >= 0 {
			break
		}
	}
	if tagEnd <= 0 {
		return Line{}, ExpectedErr("clause separator ':'", pd.Pos(at))
	}

	ln := Line{
		Tag:    string(bytes.TrimRight(line[:tagEnd], " \t")),
		TagPos: pd.Pos(at),
	}

	// Value region runs from after the ':' until an unescaped '{'
	// (qualifier block) or '!' (comment) outside quotes.
	i := tagEnd + 1
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	valStart := i
	valEnd := len(line)
	esc = false
	inQuote := false
scan:
	for ; i < len(line); i++ {
		c := line[i]
		if esc {
			esc = false
			continue
		}
		switch c {
		case '\\':
			esc = true
		case '"':
			inQuote = !inQuote
		case '{':
			if !inQuote {
				valEnd = i
				quals, rest, err := scanQualifiers(line, pd, at, i)
				if err != nil {
					return Line{}, err
				}
				ln.Qualifiers = quals
				i = rest
				// Only blanks or a comment may follow the block.
				for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
					i++
				}
				if i < len(line) {
					if line[i] != '!' {
						return Line{}, UnexpectedErr(fmt.Sprintf("trailing %q after qualifier block", line[i:]), pd.Pos(at+i))
					}
					ln.Comment = commentText(line[i:])
				}
				break scan
			}
		case '!':
			if !inQuote {
				valEnd = i
				ln.Comment = commentText(line[i:])
				break scan
			}
		}
	}
	if inQuote {
		return Line{}, ExpectedErr("closing '\"'", pd.Pos(at+len(line)-1))
	}
	ln.Value = bytes.TrimRight(line[valStart:valEnd], " \t")
	ln.ValuePos = pd.Pos(at + valStart)
	return ln, nil
}

func commentText(b []byte) string {
	return string(bytes.TrimSpace(b[1:]))
}

// scanQualifiers parses a `{key="value", ...}` block starting at the
// '{' found at index start of line. It returns the parsed pairs and
// the index just past the closing '}'.
func scanQualifiers(line []byte, pd *PosDoc, at, start int) ([]Qual, int, error) {
	i := start + 1
	var quals []Qual
	for {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			return nil, 0, ExpectedErr("'}' closing qualifier block", pd.Pos(at+len(line)-1))
		}
		if line[i] == '}' {
			return quals, i + 1, nil
		}

		keyStart := i
		for i < len(line) && line[i] != '=' {
			if line[i] == '}' || line[i] == ',' {
				return nil, 0, ExpectedErr("'=' in qualifier", pd.Pos(at+i))
			}
			i++
		}
		if i >= len(line) {
			return nil, 0, ExpectedErr("'=' in qualifier", pd.Pos(at+keyStart))
		}
		key := bytes.TrimRight(line[keyStart:i], " \t")
		i++ // past '='
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) || line[i] != '"' {
			return nil, 0, ExpectedErr("quoted qualifier value", pd.Pos(at+i))
		}
		inner, n, err := ScanQuoted(line[i:], pd, at+i)
		if err != nil {
			return nil, 0, err
		}
		quals = append(quals, Qual{
			Key:    key,
			KeyPos: pd.Pos(at + keyStart),
			Value:  inner,
			ValPos: pd.Pos(at + i),
		})
		i += n
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i < len(line) && line[i] == ',' {
			i++
		}
	}
}
