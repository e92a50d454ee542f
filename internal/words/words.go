// Package words supplies random search terms.
package words

import (
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// Generator produces a search term on demand.
type Generator interface {
	Generate() string
}

// FakerGenerator draws single English words from gofakeit's global source.
type FakerGenerator struct{}

func NewFakerGenerator() *FakerGenerator {
	return &FakerGenerator{}
}

func (FakerGenerator) Generate() string {
	return strings.ToLower(gofakeit.Word())
}

// Static always returns the same term.
type Static string

func (s Static) Generate() string {
	return string(s)
}

// Func adapts a plain function to Generator.
type Func func() string

func (f Func) Generate() string {
	return f()
}
