package components

const (
	cardBorderLines  = 2
	cardContentLines = 4 // title, assignee, two description lines
	cardSummaryLines = 2

	// TaskCardHeight is the fixed height of a rendered task card
	TaskCardHeight = cardContentLines + cardBorderLines

	ellipsis = "…"
)
