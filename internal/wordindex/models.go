package wordindex

import "time"

// IndexedWord is one stored word.
type IndexedWord struct {
	ID         int64     `json:"id"`
	Word       string    `json:"word"`
	Normalized string    `json:"normalized"`
	Signature  string    `json:"signature"`
	Source     string    `json:"source"`
	BatchID    string    `json:"batch_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ImportResult summarizes one Import call.
type ImportResult struct {
	BatchID    string `json:"batch_id"`
	Source     string `json:"source"`
	Inserted   int    `json:"inserted"`
	Duplicates int    `json:"duplicates"`
	Rejected   int    `json:"rejected"`
}

// Batch describes a past import.
type Batch struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Mode      string    `json:"mode"`
	Inserted  int       `json:"inserted"`
	Skipped   int       `json:"skipped"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats summarizes the index for the store's mode.
type Stats struct {
	Mode       string `json:"mode"`
	Words      int    `json:"words"`
	Signatures int    `json:"signatures"`
	Families   int    `json:"families"`
	Batches    int    `json:"batches"`
}
