package models

// GeneratedPage is a rendered documentation page ready to be written
type GeneratedPage struct {
	Component string // display name
	Module    string // dotted module name
	FilePath  string // path where the page should be written
	Content   string // reStructuredText content
	Image     string // image reference used on the page, empty when none
}

// GenerationSummary contains statistics about a generation run
type GenerationSummary struct {
	ActuatorsFound int
	SensorsFound   int
	ServicesFound  int
	ImagesFound    int
	GeneratedFiles []string
}

// ImageRef is a component picture found under the media root
type ImageRef struct {
	Path  string // file path of the picture
	Width int    // display width, already capped to the configured maximum
}
