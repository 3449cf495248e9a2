package canvas

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int, bool) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, i, false
	}
	return f, i + n, true
}

// MustParseSVGPath parses an SVG path data string and panics if it fails.
func MustParseSVGPath(s string) *Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSVGPath parses an SVG path data string consisting of M, L, H, V and Z commands, absolute or relative. Curve and arc commands are not accepted since paths hold flattened geometry only.
func ParseSVGPath(s string) (*Path, error) {
	path := []byte(s)
	p := &Path{}

	var prevCmd byte
	i := skipCommaWhitespace(path)
	for i < len(path) {
		cmd := prevCmd
		if c := path[i]; 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' {
			cmd = c
			i++
		} else if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			return nil, fmt.Errorf("bad path: expected command at position %d", i)
		}

		pos := p.Pos()
		switch cmd {
		case 'M', 'm', 'L', 'l':
			x, n, ok := parseNum(path[i:])
			i += n
			if !ok {
				return nil, fmt.Errorf("bad path: expected number at position %d", i)
			}
			y, n, ok := parseNum(path[i:])
			i += n
			if !ok {
				return nil, fmt.Errorf("bad path: expected number at position %d", i)
			}
			if cmd == 'm' || cmd == 'l' {
				x += pos.X
				y += pos.Y
			}
			if cmd == 'M' || cmd == 'm' {
				p.MoveTo(x, y)
				// subsequent coordinate pairs are implicit lineto commands
				if cmd == 'M' {
					cmd = 'L'
				} else {
					cmd = 'l'
				}
			} else {
				p.LineTo(x, y)
			}
		case 'H', 'h', 'V', 'v':
			f, n, ok := parseNum(path[i:])
			i += n
			if !ok {
				return nil, fmt.Errorf("bad path: expected number at position %d", i)
			}
			x, y := pos.X, pos.Y
			switch cmd {
			case 'H':
				x = f
			case 'h':
				x += f
			case 'V':
				y = f
			case 'v':
				y += f
			}
			p.LineTo(x, y)
		case 'Z', 'z':
			p.Close()
		default:
			return nil, fmt.Errorf("bad path: unsupported command '%c'", cmd)
		}
		prevCmd = cmd
		i += skipCommaWhitespace(path[i:])
	}
	return p, nil
}
