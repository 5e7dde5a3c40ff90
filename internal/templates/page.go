package templates

// PageData is everything a component page renders
type PageData struct {
	Title            string
	Module           string
	Image            *ImageData
	ShortDescription string
	Description      string
	Links            []LinkData
	DataFields       []FieldData
	Services         []ServiceData
	Properties       []FieldData
}

// ImageData references the component picture
type ImageData struct {
	Path  string
	Width int
}

// LinkData is one entry of the associated files section
type LinkData struct {
	Label string
	URL   string
}

// FieldData is one exported data field or configuration parameter with its
// value already formatted
type FieldData struct {
	Name  string
	Type  string
	Value string
	Doc   string
}

// ServiceData is one service entry
type ServiceData struct {
	Signature   string
	Async       bool
	Documented  bool
	Description string
	Params      []ParamData
	Return      string
}

// ParamData documents one service parameter
type ParamData struct {
	Name string
	Doc  string
}
