package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// facesFor splits each sum into two legal die faces.
func facesFor(sums ...int) []int {
	var faces []int
	for _, s := range sums {
		faces = append(faces, s/2, s-s/2)
	}
	return faces
}

func TestCryptoRollerBounds(t *testing.T) {
	var r CryptoRoller
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		roll, err := r.Roll()
		require.NoError(t, err)
		for _, v := range roll.Dice {
			if v < 1 || v > DieSides {
				t.Fatalf("roll out of bounds for d6: %d", v)
			}
			seen[v] = true
		}
		assert.Equal(t, roll.Dice[0]+roll.Dice[1], roll.Sum())
	}
	assert.Len(t, seen, DieSides, "500 throws should show every face")
}

func TestSequenceRoller(t *testing.T) {
	r := NewSequenceRoller(facesFor(7, 2, 12)...)

	roll, err := r.Roll()
	require.NoError(t, err)
	assert.Equal(t, [2]int{3, 4}, roll.Dice)
	assert.Equal(t, 7, roll.Sum())

	roll, err = r.Roll()
	require.NoError(t, err)
	assert.Equal(t, 2, roll.Sum())

	roll, err = r.Roll()
	require.NoError(t, err)
	assert.Equal(t, 12, roll.Sum())
	assert.Equal(t, "6+6=12", roll.String())

	_, err = r.Roll()
	assert.ErrorIs(t, err, ErrDiceExhausted)
}

func TestSequenceRollerRejectsBadFaces(t *testing.T) {
	r := NewSequenceRoller(0, 7)
	_, err := r.Roll()
	assert.Error(t, err)
	assert.Equal(t, 0, r.Remaining())
}

func TestSafeRand(t *testing.T) {
	_, err := safeRand(0)
	assert.Error(t, err)

	v, err := safeRand(1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
