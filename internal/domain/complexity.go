package domain

import (
	"fmt"
	"strings"
)

// Complexity classifies how demanding a campaign is to run.
type Complexity string

const (
	ComplexitySimple     Complexity = "simple"
	ComplexityStandard   Complexity = "standard"
	ComplexityComplex    Complexity = "complex"
	ComplexityEnterprise Complexity = "enterprise"
)

// ParseComplexity normalizes a complexity level, rejecting anything outside the four known levels.
func ParseComplexity(raw string) (Complexity, error) {
	c := Complexity(strings.ToLower(strings.TrimSpace(raw)))
	switch c {
	case ComplexitySimple, ComplexityStandard, ComplexityComplex, ComplexityEnterprise:
		return c, nil
	default:
		return "", invalidInput("complexity",
			fmt.Sprintf("%q is not one of simple, standard, complex, enterprise", raw))
	}
}
