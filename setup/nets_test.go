package setup

import (
	"testing"

	"github.com/acorn-eda/acorn/designrule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diffPairCatalogue() *designrule.Catalogue {
	cat := &designrule.Catalogue{}
	spacing := [designrule.NumShapeTypes][designrule.NumShapeTypes]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	cat.Sets[0] = &designrule.DesignRuleSet{
		ID: 0,
		Subsets: []designrule.Subset{
			{ID: 0, LineWidthCells: 1, ViaUpDiameterCells: 1, ViaDownDiameterCells: 1, Spacing: spacing, Directions: designrule.MaskManhattan},
			{ID: 1, LineWidthCells: 1, ViaUpDiameterCells: 1, ViaDownDiameterCells: 1, Spacing: spacing, Directions: designrule.MaskManhattan, IsPseudoNet: true, DiffPairPitchCells: 4},
		},
	}

	return cat
}

func TestBuildNetsMapsOrdinaryNetsOneToOne(t *testing.T) {
	cat := diffPairCatalogue()
	require.NoError(t, cat.Build())

	iv := InputValues{
		CellSizeMicrons: 1,
		Nets: []NetSpec{
			{Name: "n0", StartXMicrons: 0, StartYMicrons: 0, EndXMicrons: 10, EndYMicrons: 0, DiffPairPartner: -1},
			{Name: "n1", StartXMicrons: 0, StartYMicrons: 5, EndXMicrons: 10, EndYMicrons: 5, DiffPairPartner: -1},
		},
	}

	nets, err := BuildNets(iv, cat)
	require.NoError(t, err)
	require.Len(t, nets, 2)
	assert.Equal(t, 0, nets[0].PathNum)
	assert.Equal(t, 1, nets[1].PathNum)
	assert.Equal(t, -1, nets[0].PartnerOfPseudo)
	assert.Nil(t, nets[0].Synthesis)
}

func TestBuildNetsSynthesizesPseudoNetForDeclaredDiffPair(t *testing.T) {
	cat := diffPairCatalogue()
	require.NoError(t, cat.Build())

	iv := InputValues{
		CellSizeMicrons: 1,
		Nets: []NetSpec{
			{Name: "p-a", StartXMicrons: 0, StartYMicrons: 0, EndXMicrons: 20, EndYMicrons: 0, SubsetID: 0, DiffPairPartner: 1, PseudoSubsetID: 1},
			{Name: "p-b", StartXMicrons: 0, StartYMicrons: 4, EndXMicrons: 20, EndYMicrons: 4, SubsetID: 0, DiffPairPartner: 0},
		},
	}

	nets, err := BuildNets(iv, cat)
	require.NoError(t, err)
	require.Len(t, nets, 3)

	var found struct {
		pseudoPath int
		sawA       bool
		sawB       bool
	}
	found.pseudoPath = -1
	for _, n := range nets {
		switch {
		case n.Synthesis != nil:
			found.pseudoPath = n.PathNum
			assert.Equal(t, 0, n.Synthesis.PartnerAPath)
			assert.Equal(t, 1, n.Synthesis.PartnerBPath)
			assert.Equal(t, 2.0, n.Synthesis.HalfPitchCells)
		case n.PathNum == 0:
			found.sawA = true
			assert.Equal(t, 2, n.PartnerOfPseudo)
		case n.PathNum == 1:
			found.sawB = true
			assert.Equal(t, 2, n.PartnerOfPseudo)
		}
	}
	assert.Equal(t, 2, found.pseudoPath, "pseudo-net PathNum should follow every declared net's own index")
	assert.True(t, found.sawA)
	assert.True(t, found.sawB)
}

func TestBuildNetsRejectsInconsistentDiffPairPartner(t *testing.T) {
	cat := diffPairCatalogue()
	require.NoError(t, cat.Build())

	iv := InputValues{
		CellSizeMicrons: 1,
		Nets: []NetSpec{
			{Name: "p-a", DiffPairPartner: 1, PseudoSubsetID: 1},
			{Name: "p-b", DiffPairPartner: -1},
		},
	}

	_, err := BuildNets(iv, cat)
	assert.ErrorIs(t, err, ErrMissingDiffPairPartner)
}
