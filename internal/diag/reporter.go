package diag

import "docspell/internal/source"

// Reporter: минимальный контракт получения диагностик.
type Reporter interface {
	Report(code Code, primary source.Span, msg string)
}

// ReportError отправляет диагностику, если reporter задан.
func ReportError(r Reporter, code Code, primary source.Span, msg string) {
	if r != nil {
		r.Report(code, primary, msg)
	}
}

// BagReporter: адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{Code: code, Message: msg, Primary: primary})
}
