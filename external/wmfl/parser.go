package wmfl

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

type scanState int

const (
	outsideRow scanState = iota
	inRow
	inCell
)

// standingsScanner accumulates one team row at a time while the tokenizer streams tags.
type standingsScanner struct {
	state     scanState
	cellIndex int
	fragments []string
	current   TeamStanding
	teams     []TeamStanding
}

// ParseStandings extracts team rows from a standings page. Malformed or
// unexpected markup yields fewer rows, never an error.
func ParseStandings(document string) []TeamStanding {
	return parseStandings(strings.NewReader(document))
}

func parseStandings(r io.Reader) []TeamStanding {
	tokenizer := html.NewTokenizer(r)
	scanner := &standingsScanner{}

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF or a reader failure: both end the scan with what was collected.
			return scanner.teams
		case html.StartTagToken:
			scanner.startTag(tokenizer.Token())
		case html.SelfClosingTagToken:
			// <tr .../> and <td/> open and close in place.
			token := tokenizer.Token()
			scanner.startTag(token)
			scanner.endTag(token.Data)
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			scanner.endTag(string(name))
		case html.TextToken:
			scanner.text(string(tokenizer.Text()))
		}
	}
}

func (s *standingsScanner) startTag(token html.Token) {
	switch token.Data {
	case "tr":
		if isTeamRow(token.Attr) {
			s.resetRow()
			s.state = inRow
		}
	case "td":
		if s.state != outsideRow {
			s.fragments = s.fragments[:0]
			s.state = inCell
		}
	}
}

func (s *standingsScanner) text(raw string) {
	if s.state != inCell {
		return
	}
	if fragment := strings.TrimSpace(raw); fragment != "" {
		s.fragments = append(s.fragments, fragment)
	}
}

func (s *standingsScanner) endTag(name string) {
	switch name {
	case "td":
		if s.state != inCell {
			return
		}
		s.state = inRow
		if len(s.fragments) == 0 {
			return
		}
		applyStandingRules(&s.current, s.cellIndex, strings.Join(s.fragments, " "))
		s.fragments = s.fragments[:0]
		s.cellIndex++
	case "tr":
		if s.state == outsideRow {
			return
		}
		if s.current.TeamName != "" {
			s.teams = append(s.teams, s.current)
		}
		s.resetRow()
		s.state = outsideRow
	}
}

func (s *standingsScanner) resetRow() {
	s.current = TeamStanding{}
	s.cellIndex = 0
	s.fragments = s.fragments[:0]
}

func isTeamRow(attrs []html.Attribute) bool {
	for _, attr := range attrs {
		if strings.Contains(strings.ToLower(attr.Val), "team") {
			return true
		}
	}
	return false
}
