/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package entityname

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntityNames(t *testing.T) {
	require := require.New(t)

	b := MustNew(Input{Block: "b"})
	be := MustNew(Input{Block: "b", Elem: "e"})
	bm := MustNew(Input{Block: "b", Mod: Shorthand("m")})
	bmLegacy := MustNew(Input{Block: "b", ModName: "m"})
	a := MustNew(Input{Block: "a"})

	nn := NamesFrom(bm, be, nil, b, bmLegacy, a, b)
	require.Equal([]string{"a", "b", "b__e", "b_m"}, nn.IDs())
	require.Same(bm, nn[3], "first added entity should be kept")

	require.True(nn.Contains(bmLegacy))
	require.True(nn.Contains(MustNew(Input{Block: "b", Elem: "e"})))
	require.False(nn.Contains(MustNew(Input{Block: "c"})))
	require.False(nn.Contains(nil))

	i, ok := nn.Find(be)
	require.True(ok)
	require.Equal(2, i)

	i, ok = nn.Find(MustNew(Input{Block: "ab"}))
	require.False(ok)
	require.Equal(1, i)

	nn.Add(MustNew(Input{Block: "ab"}))
	require.Equal([]string{"a", "ab", "b", "b__e", "b_m"}, nn.IDs())
}

func TestCompare(t *testing.T) {
	require := require.New(t)

	a := MustNew(Input{Block: "a"})
	b := MustNew(Input{Block: "b"})

	require.Zero(Compare(nil, nil))
	require.Negative(Compare(nil, a))
	require.Positive(Compare(a, nil))
	require.Negative(Compare(a, b))
	require.Positive(Compare(b, a))
	require.Zero(Compare(a, MustNew(Input{Block: "a"})))
}
