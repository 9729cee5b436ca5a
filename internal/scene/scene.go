// Package scene is a retained drawing surface: an ordered list of filled
// polygons and text items addressed by ItemID. The board draws into it, the
// terminal front end and the snapshot exporter read it back.
package scene

import "hexclusters/internal/geometry"

// ItemID identifies a drawn item. The zero value never names an item.
type ItemID int

type Kind int

const (
	KindPolygon Kind = iota
	KindText
)

// Style is how a polygon is painted. Colors are "#rrggbb" strings.
type Style struct {
	Fill    string
	Outline string
	Width   float64
}

// Font is how a text item is painted. Text is anchored at its center.
type Font struct {
	Size  float64
	Color string
}

// Item is one drawn element.
type Item struct {
	ID     ItemID
	Kind   Kind
	Points []geometry.Point // KindPolygon
	At     geometry.Point   // KindText
	Text   string           // KindText
	Style  Style
	Font   Font
}

func (it Item) clone() Item {
	if it.Points != nil {
		it.Points = append([]geometry.Point(nil), it.Points...)
	}
	return it
}

// Scene holds items in draw order; later items paint over earlier ones.
type Scene struct {
	items map[ItemID]*Item
	order []ItemID
	next  ItemID
}

func New() *Scene {
	return &Scene{items: make(map[ItemID]*Item)}
}

func (s *Scene) add(it Item) ItemID {
	s.next++
	it.ID = s.next
	s.items[it.ID] = &it
	s.order = append(s.order, it.ID)
	return it.ID
}

// AddPolygon draws a filled polygon through pts in order.
func (s *Scene) AddPolygon(pts []geometry.Point, st Style) ItemID {
	return s.add(Item{
		Kind:   KindPolygon,
		Points: append([]geometry.Point(nil), pts...),
		Style:  st,
	})
}

// AddText draws text centered on at. Newlines start new lines.
func (s *Scene) AddText(at geometry.Point, text string, f Font) ItemID {
	return s.add(Item{Kind: KindText, At: at, Text: text, Font: f})
}

// SetText replaces the text of a text item.
func (s *Scene) SetText(id ItemID, text string) bool {
	it, ok := s.items[id]
	if !ok || it.Kind != KindText {
		return false
	}
	it.Text = text
	return true
}

// Text returns the current text of a text item.
func (s *Scene) Text(id ItemID) (string, bool) {
	it, ok := s.items[id]
	if !ok || it.Kind != KindText {
		return "", false
	}
	return it.Text, true
}

// Move shifts every listed item by d. Unknown ids are skipped.
func (s *Scene) Move(d geometry.Point, ids ...ItemID) {
	for _, id := range ids {
		it, ok := s.items[id]
		if !ok {
			continue
		}
		switch it.Kind {
		case KindPolygon:
			for i := range it.Points {
				it.Points[i] = it.Points[i].Add(d)
			}
		case KindText:
			it.At = it.At.Add(d)
		}
	}
}

// Item returns a copy of the item with the given id.
func (s *Scene) Item(id ItemID) (Item, bool) {
	it, ok := s.items[id]
	if !ok {
		return Item{}, false
	}
	return it.clone(), true
}

// Items returns copies of all items in draw order.
func (s *Scene) Items() []Item {
	out := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id].clone())
	}
	return out
}

func (s *Scene) Len() int { return len(s.order) }
