package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelier-ceremonie/location-api/pkg/normalize"
)

func TestFold(t *testing.T) {
	cases := map[string]string{
		"Bélanger":  "belanger",
		"DURAND":    "durand",
		"Gaëlle":    "gaelle",
		"Françoise": "francoise",
		"":          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalize.Fold(in), "Fold(%q)", in)
	}
}
