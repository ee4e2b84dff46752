package diag

import (
	"docspell/internal/source"
)

// Diagnostic — ошибка лексера с кодом и позицией.
// Предупреждений лексер не выдаёт, поэтому уровня серьёзности нет.
type Diagnostic struct {
	Code    Code
	Message string
	Primary source.Span
}
