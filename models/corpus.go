package models

// CorpusRecord is one legal-code entry from the bundled corpus file
type CorpusRecord struct {
	ID      string `json:"id"`
	Section string `json:"section"`
	Title   string `json:"title"`
	Chapter string `json:"chapter"`
	Text    string `json:"text"`
}
