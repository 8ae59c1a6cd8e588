package catalog_test

import (
	"testing"

	"github.com/gnames/herbdb/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestCapitalizeTitle(t *testing.T) {
	tests := []struct {
		msg, in, out string
	}{
		{"lower", "pain relief", "Pain Relief"},
		{"upper", "PAIN RELIEF", "Pain Relief"},
		{"mixed", "dIgEsTiVe aid", "Digestive Aid"},
		{"empty", "", ""},
		{"unicode", "écorce", "Écorce"},
	}

	for _, v := range tests {
		assert.Equal(t, v.out, catalog.CapitalizeTitle(v.in), v.msg)
	}
}

func TestCapitalizeScientific(t *testing.T) {
	tests := []struct {
		msg, in, out string
	}{
		{"lower", "zingiber officinale", "Zingiber officinale"},
		{"upper", "  ZINGIBER OFFICINALE ", "Zingiber officinale"},
		{"spaces", "matricaria   chamomilla", "Matricaria chamomilla"},
		{"empty", "   ", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.out, catalog.CapitalizeScientific(v.in), v.msg)
	}
}

func TestNameKey(t *testing.T) {
	tests := []struct {
		msg, in, out string
	}{
		{"ascii", "Ginger", "ginger"},
		{"accents", "ÉRABLE Champêtre", "érable champêtre"},
		{"spaces", "  Lemon   Balm ", "lemon balm"},
		{"empty", "  ", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.out, catalog.NameKey(v.in), v.msg)
	}
	assert.Equal(t, catalog.NameKey("érable champêtre"),
		catalog.NameKey("ÉRABLE CHAMPÊTRE"))
}

func TestNormalizeUseNames(t *testing.T) {
	tests := []struct {
		msg string
		in  []string
		out []string
	}{
		{
			msg: "case variants",
			in:  []string{"Pain Relief", "pain relief"},
			out: []string{"Pain Relief"},
		},
		{
			msg: "commas and spaces",
			in:  []string{"  sleep   aid , anti-inflammatory,,", "SLEEP AID"},
			out: []string{"Sleep Aid", "Anti-inflammatory"},
		},
		{
			msg: "unicode case variants",
			in:  []string{"écorce tonique", "ÉCORCE TONIQUE"},
			out: []string{"Écorce Tonique"},
		},
		{
			msg: "empty",
			in:  []string{"", " , "},
			out: []string{},
		},
		{
			msg: "nil",
			in:  nil,
			out: []string{},
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.out, catalog.NormalizeUseNames(v.in), v.msg)
	}
}

func TestLabels(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("In Stock", catalog.InStock.Label())
	assert.Equal("Out Of Stock", catalog.OutOfStock.Label())
	assert.Equal("Needs Ordering", catalog.NeedsOrdering.Label())
	assert.Equal("On Order", catalog.OnOrder.Label())
	assert.Equal("N/A", catalog.OrderAbsent.Label())
	assert.Equal("Medium", catalog.QuantityMedium.Label())
	assert.Equal("N/A", catalog.QuantityAbsent.Label())
}

func TestQuantityRank(t *testing.T) {
	assert := assert.New(t)
	assert.Greater(catalog.QuantityHigh.Rank(), catalog.QuantityMedium.Rank())
	assert.Greater(catalog.QuantityMedium.Rank(), catalog.QuantityLow.Rank())
	assert.Greater(catalog.QuantityLow.Rank(), catalog.QuantityAbsent.Rank())
}
