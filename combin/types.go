package combin

import "fmt"

// Swap exchanges positions X and Y (0-based) of the 0/1 word.
type Swap struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// String renders s as "swap <x> and <y>".
func (s Swap) String() string {
	return fmt.Sprintf("swap %d and %d", s.X, s.Y)
}
