package config

//go:generate go tool go-enum --marshal --names --file=$GOFILE

// Specification of requested output.
// ENUM(fragment, document, bundle)
type OutputMode int

// Ext returns extension of the main output file.
func (o OutputMode) Ext() string {
	switch o {
	case OutputModeFragment, OutputModeDocument:
		return ".html"
	case OutputModeBundle:
		return ".zip"
	default:
		// this should never happen
		panic("unsupported output mode requested")
	}
}

// Standalone reports whether output is a complete page.
func (o OutputMode) Standalone() bool {
	return o != OutputModeFragment
}
