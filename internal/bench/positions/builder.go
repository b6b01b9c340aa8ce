package positions

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Boundary tokens close the set being accumulated.
const (
	TokenNext = "next"
	TokenEnd  = "end"
)

// ParseError reports a line that is neither a boundary token nor an integer.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("candidate stream line %d: malformed token %q", e.Line, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func IsBoundary(line string) bool {
	return line == "" || line == TokenNext || line == TokenEnd
}

// ReadCandidates consumes one query's candidate output and returns the closed
// position sets in encounter order. Every line is copied verbatim to audit
// before it is classified; surrounding whitespace is ignored when classifying. Integers accumulated after the last boundary still
// form a final set. A malformed token stops parsing but not the echo: the
// stream is consumed to its end either way.
func ReadCandidates(r io.Reader, audit io.Writer, ws int) ([]Set, error) {
	if ws < 1 {
		return nil, fmt.Errorf("window size must be positive, got %d", ws)
	}
	if audit == nil {
		audit = io.Discard
	}

	var out []Set
	cur := NewSet()
	pending := false

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, readErr := br.ReadString('\n')
		if raw != "" {
			lineNo++
			if _, err := io.WriteString(audit, raw); err != nil {
				return out, fmt.Errorf("write audit log: %w", err)
			}

			line := strings.TrimSpace(raw)
			if IsBoundary(line) {
				out = append(out, cur)
				cur = NewSet()
				pending = false
			} else {
				pos, err := strconv.Atoi(line)
				if err != nil {
					// the rest of the stream is still echoed so the producer is drained
					if _, cerr := io.Copy(audit, br); cerr != nil {
						return out, fmt.Errorf("write audit log: %w", cerr)
					}
					return out, &ParseError{Line: lineNo, Token: line, Err: err}
				}
				cur.AddWindow(pos, ws)
				pending = true
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return out, fmt.Errorf("read candidate stream: %w", readErr)
		}
	}

	if pending {
		out = append(out, cur)
	}

	return out, nil
}
