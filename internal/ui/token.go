package ui

// Token is a piece of rendered text.
//
// Exactly one of the fields is set; a Token with only Text set is plain text.
type Token struct {
	Text    string `json:"text,omitempty"`
	Link    *Link  `json:"link,omitempty"`
	Command string `json:"command,omitempty"`
	Bold    string `json:"bold,omitempty"`
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

func Text(s string) Token {
	return Token{Text: s}
}

func LinkTo(label, url string) Token {
	return Token{Link: &Link{Label: label, URL: url}}
}

func Command(cmd string) Token {
	return Token{Command: cmd}
}

func Bold(s string) Token {
	return Token{Bold: s}
}

// Report is the content of a success, info or error banner
type Report struct {
	Headline  string
	Body      []Token
	NextSteps [][]Token
}
