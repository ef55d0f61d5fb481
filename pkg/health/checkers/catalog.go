package checkers

import (
	"context"

	"github.com/avikamggh/ai-interviewer/pkg/questions"
)

// CatalogChecker verifies that every supported language carries a complete
// question catalog. A hole in the catalog is a deployment error and the
// service should report not-ready rather than hand out truncated interviews.
type CatalogChecker struct{}

func NewCatalogChecker() *CatalogChecker { return &CatalogChecker{} }

func (c *CatalogChecker) Name() string { return "question_catalog" }

func (c *CatalogChecker) Check(_ context.Context) error {
	return questions.Validate()
}
