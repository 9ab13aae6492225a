package table

type TableMsg interface {
	isTableMsg()
}

func (SizeMsg) isTableMsg() {}

// SizeMsg is the panel's share of the window
type SizeMsg struct {
	Width  int
	Height int
}
