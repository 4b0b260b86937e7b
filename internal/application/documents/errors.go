package documents

import "fmt"

// MissingTemplateError aborts generation before any substitution: without a
// template there is nothing meaningful to emit.
type MissingTemplateError struct {
	DocumentType string
	Path         string
}

func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("រកមិនឃើញគំរូឯកសារសម្រាប់ %s ទេ (%s)", e.DocumentType, e.Path)
}
