package partition

import "fmt"

// Move relocates one element: after applying it, element Element (1-based)
// belongs to block Block (0-based).
type Move struct {
	Element int `json:"element" yaml:"element"`
	Block   int `json:"block" yaml:"block"`
}

// String renders m as "move <element> to block <block>".
func (m Move) String() string {
	return fmt.Sprintf("move %d to block %d", m.Element, m.Block)
}
