package yamlpath

import "strconv"

// parsePath compiles a path expression into its segment sequence. On
// failure it returns a nil slice and an *Error describing the defect.
func parsePath(src string) ([]*segment, *Error) {
	if src == "" {
		return nil, newError(ErrorParse, "path is empty", 0)
	}

	var segs []*segment

	pos := 0

	switch src[0] {
	case '$':
		segs = append(segs, &segment{kind: Root})
		pos = 1
		if pos < len(src) && src[pos] != '.' && src[pos] != '[' {
			return nil, newError(ErrorSection, "'$' is only legal as the first character of a path", pos)
		}
	case '&':
		end := pos + 1
		for end < len(src) && src[end] != '.' && src[end] != '[' {
			end++
		}
		name := src[1:end]
		if name == "" {
			return nil, newError(ErrorParse, "anchor name is missing", 0)
		}
		segs = append(segs, &segment{kind: Anchor, name: name})
		pos = end
	default:
		segs = append(segs, &segment{kind: Root})
		if src[0] != '.' && src[0] != '[' {
			end := 0
			for end < len(src) && src[end] != '.' && src[end] != '[' {
				end++
			}
			segs = append(segs, &segment{kind: Key, name: src[0:end]})
			pos = end
		}
	}

	for pos < len(src) {
		var (
			seg    *segment
			newPos int
			err    *Error
		)

		switch src[pos] {
		case '.':
			seg, newPos, err = parseDotKey(src, pos)
		case '[':
			seg, newPos, err = parseBracket(src, pos)
		default:
			err = newError(ErrorParse, "expected '.' or '[' to start a segment", pos)
		}

		if err != nil {
			return nil, err
		}

		segs = append(segs, seg)
		pos = newPos
	}

	return segs, nil
}

// parseDotKey parses a ".name" or ".*" segment starting at src[pos] == '.'.
func parseDotKey(src string, pos int) (*segment, int, *Error) {
	i := pos + 1
	if i >= len(src) {
		return nil, 0, newError(ErrorParse, "segment key is missing", pos)
	}

	if src[i] == '*' {
		j := i + 1
		if j < len(src) && src[j] != '.' && src[j] != '[' {
			return nil, 0, newError(ErrorParse, "unexpected character after wildcard", j)
		}
		return &segment{kind: Selection}, j, nil
	}

	j := i
	for j < len(src) && src[j] != '.' && src[j] != '[' {
		j++
	}
	if j == i {
		return nil, 0, newError(ErrorParse, "segment key is missing", pos)
	}

	return &segment{kind: Key, name: src[i:j]}, j, nil
}

// parseBracket parses a "[...]" segment starting at src[pos] == '['.
func parseBracket(src string, pos int) (*segment, int, *Error) {
	i := pos + 1

	if i < len(src) && src[i] == ':' {
		if i+1 >= len(src) || src[i+1] != ']' {
			return nil, 0, newError(ErrorParse, "expected ']' after ':'", i+1)
		}
		return &segment{kind: Set}, i + 2, nil
	}

	if i < len(src) && (src[i] == '\'' || src[i] == '"') {
		return parseQuotedList(src, pos, i)
	}

	return parseNumberList(src, pos, i)
}

// parseQuotedList parses a comma-separated list of single/double quoted
// strings, closed by ']'. i is the index of the opening quote of the first
// item.
func parseQuotedList(src string, start, i int) (*segment, int, *Error) {
	var items []string

	for {
		if i >= len(src) || (src[i] != '\'' && src[i] != '"') {
			return nil, 0, newError(ErrorParse, "expected a quoted key", i)
		}

		quote := src[i]
		i++
		contentStart := i

		for i < len(src) && src[i] != quote {
			i++
		}
		if i >= len(src) {
			return nil, 0, newError(ErrorParse, "unterminated quoted key", contentStart)
		}

		content := src[contentStart:i]
		if content == "" {
			return nil, 0, newError(ErrorParse, "segment key is missing", contentStart)
		}
		i++ // consume closing quote

		items = append(items, content)

		if i < len(src) && src[i] == ',' {
			i++
			continue
		}
		break
	}

	if i >= len(src) || src[i] != ']' {
		return nil, 0, newError(ErrorParse, "expected ',' or ']'", i)
	}
	i++

	if len(items) > maxSetItems {
		return nil, 0, newError(ErrorSection, "too many items in selection", start)
	}

	if len(items) == 1 {
		return &segment{kind: Key, name: items[0]}, i, nil
	}
	return &segment{kind: Selection, keys: items}, i, nil
}

// parseNumberList parses a comma-separated list of unsigned decimal
// integers closed by ']'. A single legacy "N:]" form (a digit run followed
// by ':' then ']') is accepted as an alias for the empty Set wildcard.
func parseNumberList(src string, start, i int) (*segment, int, *Error) {
	var items []int

	first := true
	for {
		for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
			i++
		}

		if i < len(src) && src[i] == '-' {
			return nil, 0, newError(ErrorParse, "negative index is not allowed", i)
		}

		digitsStart := i
		for i < len(src) && src[i] >= '0' && src[i] <= '9' {
			i++
		}
		if i == digitsStart {
			return nil, 0, newError(ErrorParse, "expected an unsigned integer", i)
		}

		n, convErr := strconv.Atoi(src[digitsStart:i])
		if convErr != nil {
			return nil, 0, newError(ErrorParse, "integer out of range", digitsStart)
		}

		if first {
			peek := i
			for peek < len(src) && (src[peek] == ' ' || src[peek] == '\t') {
				peek++
			}
			if peek < len(src) && src[peek] == ':' {
				j := peek + 1
				for j < len(src) && (src[j] == ' ' || src[j] == '\t') {
					j++
				}
				if j < len(src) && src[j] == ']' {
					return &segment{kind: Set}, j + 1, nil
				}
				return nil, 0, newError(ErrorParse, "unsupported range syntax", peek)
			}
		}
		first = false

		items = append(items, n)

		for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
			i++
		}

		if i < len(src) && src[i] == ',' {
			i++
			continue
		}
		break
	}

	if i >= len(src) || src[i] != ']' {
		return nil, 0, newError(ErrorParse, "expected ']'", i)
	}
	i++

	if len(items) > maxSetItems {
		return nil, 0, newError(ErrorSection, "too many items in set", start)
	}

	if len(items) == 1 {
		return &segment{kind: Index, index: items[0]}, i, nil
	}
	return &segment{kind: Set, indices: items}, i, nil
}
