package main

// Book is the document served under /books.
type Book struct {
	ID     string   `json:"id" bson:"_id"`
	Title  string   `json:"title" bson:"title"`
	Author string   `json:"author,omitempty" bson:"author,omitempty"`
	Year   int      `json:"year,omitempty" bson:"year,omitempty"`
	ISBN   string   `json:"isbn,omitempty" bson:"isbn,omitempty"`
	Tags   []string `json:"tags,omitempty" bson:"tags,omitempty"`
}

func newBook() *Book { return &Book{} }

func (b *Book) DocumentID() string { return b.ID }

func (b *Book) SetDocumentID(id string) { b.ID = id }
