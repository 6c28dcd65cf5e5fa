package http

import (
	"github.com/gin-gonic/gin"

	"proof-timeline/internal/matcher"
	"proof-timeline/internal/recognition"
	"proof-timeline/pkg/log"
)

// KeywordMatcher turns labels into a verdict. *matcher.Matcher satisfies it.
type KeywordMatcher interface {
	Match(labels, required []string, policy matcher.Policy) matcher.Verdict
}

// Handler serves the recognition proxy.
type Handler interface {
	Verify(c *gin.Context)
	Recover(c *gin.Context, err any)
}

type handler struct {
	l       log.Logger
	gateway recognition.Gateway
	matcher KeywordMatcher
	policy  matcher.Policy
}

// New creates the /verify proxy handler. policy decides keyword verdicts.
func New(l log.Logger, gateway recognition.Gateway, keywordMatcher KeywordMatcher, policy matcher.Policy) Handler {
	return &handler{
		l:       l,
		gateway: gateway,
		matcher: keywordMatcher,
		policy:  policy,
	}
}
