package mock

import "github.com/fwojciec/sigles"

var _ sigles.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sigles.Extractor.
type Extractor struct {
	ExtractFn func(html string, term string) ([]*sigles.Record, error)
	SourceFn  func() sigles.Source
}

func (e *Extractor) Extract(html string, term string) ([]*sigles.Record, error) {
	return e.ExtractFn(html, term)
}

func (e *Extractor) Source() sigles.Source {
	return e.SourceFn()
}

var _ sigles.SourceDetector = (*SourceDetector)(nil)

// SourceDetector is a mock implementation of sigles.SourceDetector.
type SourceDetector struct {
	DetectFn func(html string) sigles.Source
}

func (d *SourceDetector) Detect(html string) sigles.Source {
	return d.DetectFn(html)
}

var _ sigles.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of sigles.ExtractorRegistry.
type ExtractorRegistry struct {
	GetFn        func(source sigles.Source) sigles.Extractor
	GetForHTMLFn func(html string) sigles.Extractor
	RegisterFn   func(extractor sigles.Extractor)
	ListFn       func() []sigles.Source
}

func (r *ExtractorRegistry) Get(source sigles.Source) sigles.Extractor {
	return r.GetFn(source)
}

func (r *ExtractorRegistry) GetForHTML(html string) sigles.Extractor {
	return r.GetForHTMLFn(html)
}

func (r *ExtractorRegistry) Register(extractor sigles.Extractor) {
	r.RegisterFn(extractor)
}

func (r *ExtractorRegistry) List() []sigles.Source {
	return r.ListFn()
}
