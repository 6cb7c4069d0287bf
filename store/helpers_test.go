package store

type note struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Title string `json:"title" bson:"title"`
	Pages int    `json:"pages,omitempty" bson:"pages,omitempty"`
}

func (n *note) DocumentID() string      { return n.ID }
func (n *note) SetDocumentID(id string) { n.ID = id }

func newNote() *note { return &note{} }
