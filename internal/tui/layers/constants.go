package layers

const (
	ModalWidthDivisor = 2

	ModalMinWidth = 40
	ModalMaxWidth = 80

	// border + padding on each side
	ModalChromeWidth = 4

	HelpWidth = 56
)
