package model

import "encoding/json"

// Item is one checklist entry. The id is assigned once by the caller and
// never changes afterwards.
type Item struct {
	id   int
	text string
}

// New returns an empty Item, to be filled with SetID and SetItem.
func New() *Item { return &Item{} }

// NewItem returns a fully populated Item.
func NewItem(id int, text string) Item {
	return Item{id: id, text: text}
}

func (i *Item) SetID(id int)        { i.id = id }
func (i *Item) SetItem(text string) { i.text = text }

func (i Item) ID() int      { return i.id }
func (i Item) Item() string { return i.text }

// record is the stored shape of an Item.
type record struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// legacyRecord matches lists written with underscore field names.
type legacyRecord struct {
	ID   *int    `json:"_id"`
	Text *string `json:"_item"`
}

func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(record{ID: i.id, Text: i.text})
}

func (i *Item) UnmarshalJSON(b []byte) error {
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	var l legacyRecord
	if err := json.Unmarshal(b, &l); err != nil {
		return err
	}
	if r.ID == 0 && l.ID != nil {
		r.ID = *l.ID
	}
	if r.Text == "" && l.Text != nil {
		r.Text = *l.Text
	}
	i.SetID(r.ID)
	i.SetItem(r.Text)
	return nil
}
