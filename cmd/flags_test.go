package cmd

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/gnames/herbdb/pkg/catalog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		arg   string
		id    int
		isErr bool
	}{
		{"7", 7, false},
		{" 12 ", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"seven", 0, true},
	}

	for _, v := range tests {
		id, err := parseID(catalog.KindPlant, v.arg)
		if v.isErr {
			var vErr *catalog.ValidationError
			assert.ErrorAs(t, err, &vErr, v.arg)
			continue
		}
		require.NoError(t, err, v.arg)
		assert.Equal(t, v.id, id, v.arg)
	}
}

func TestEnumFlag(t *testing.T) {
	tests := []struct{ in, out string }{
		{"In_Stock", "in_stock"},
		{" low ", "low"},
		{"null", ""},
		{"NONE", ""},
	}
	for _, v := range tests {
		assert.Equal(t, v.out, enumFlag(v.in), v.in)
	}
}

// TestPlantFlagsApply verifies that only changed flags modify the input.
func TestPlantFlagsApply(t *testing.T) {
	var pf plantFlags
	cmd := &cobra.Command{Use: "update"}
	pf.register(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--order", "null", "-c", "Sage"}))

	in := catalog.PlantInput{
		ScientificName:  "Salvia officinalis",
		CommonName:      "Garden Sage",
		StockStatus:     catalog.InStock,
		OrderStatus:     catalog.OnOrder,
		MedicinalUseIDs: []int{1, 2},
	}
	pf.apply(cmd, &in)

	assert := assert.New(t)
	assert.Equal("Salvia officinalis", in.ScientificName)
	assert.Equal("Sage", in.CommonName)
	assert.Equal(catalog.InStock, in.StockStatus)
	assert.Equal(catalog.OrderAbsent, in.OrderStatus)
	assert.Equal([]int{1, 2}, in.MedicinalUseIDs)

	require.NoError(t, cmd.ParseFlags([]string{"--use-name", "Digestive Aid"}))
	pf.apply(cmd, &in)
	assert.Empty(in.MedicinalUseIDs)
	assert.Equal([]string{"Digestive Aid"}, in.NewMedicinalUseNames)
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "plant", pluralize(1, "plant"))
	assert.Equal(t, "plants", pluralize(0, "plant"))
	assert.Equal(t, "uses", pluralize(2, "use"))
}

func TestRenderText(t *testing.T) {
	old := outFormat
	defer func() { outFormat = old }()
	outFormat = "text"

	plants := []catalog.Plant{
		{
			ID:             1,
			CommonName:     "Ginger",
			ScientificName: "Zingiber officinale",
			StockStatus:    catalog.InStock,
			QuantityLevel:  catalog.QuantityLow,
			UpdatedAt:      time.Now(),
		},
	}

	buf := new(bytes.Buffer)
	require.NoError(t, render(buf, plants, func(w io.Writer) {
		printPlants(w, plants)
	}))
	out := buf.String()
	assert.Contains(t, out, "Zingiber officinale")
	assert.Contains(t, out, "In Stock")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "1 plant\n")

	buf.Reset()
	printPlant(buf, &plants[0])
	assert.Contains(t, buf.String(), "Medicinal uses:")

	buf.Reset()
	printPlants(buf, nil)
	assert.Equal(t, "No plants found\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	old := outFormat
	defer func() { outFormat = old }()
	outFormat = "json"

	buf := new(bytes.Buffer)
	mu := catalog.MedicinalUse{ID: 2, UseName: "Sedative"}
	require.NoError(t, render(buf, mu, func(w io.Writer) {
		t.Fatal("text renderer called")
	}))
	assert.Contains(t, buf.String(), `"useName": "Sedative"`)
}
