package entity

// HeroImageSpec identifies a banner source image that gets resized
// variants at every configured width.
type HeroImageSpec struct {
	Name string `json:"name"`
	Ext  string `json:"ext"`
}

// SingleImageSpec identifies a one-off source image that only gets
// format conversion at its original resolution.
type SingleImageSpec struct {
	InputRelPath string `json:"input_rel_path"`
	OutputName   string `json:"output_name"`
}

// Variant is one produced output file. Width is zero for single-image
// variants kept at original resolution.
type Variant struct {
	Source string `json:"source"`
	Width  int    `json:"width,omitempty"`
	Format string `json:"format"`
	Path   string `json:"path"`
}

type VariantEvent struct {
	RunID   string  `json:"run_id"`
	Variant Variant `json:"variant"`
}

type RunSummary struct {
	Written int `json:"written"`
	Skipped int `json:"skipped"`
}
