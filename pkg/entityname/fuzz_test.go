/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package entityname

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/voedger/bemname/pkg/naming"
)

func TestEntityName_Fuzz(t *testing.T) {
	require := require.New(t)

	type src struct {
		Block, Elem, ModName, ModVal string
	}

	f := fuzz.New().NilChance(0)
	var s src
	for i := 0; i < 10000; i++ {
		f.Fuzz(&s)

		object, err := New(Input{Block: s.Block, Elem: s.Elem, Mod: ModInput{Name: s.ModName, Val: Val(s.ModVal)}})
		if s.Block == "" {
			require.ErrorIs(err, ErrInvalidEntity)
			continue
		}
		require.NoError(err)

		legacy := MustNew(Input{Block: s.Block, Elem: s.Elem, ModName: s.ModName, ModVal: Val(s.ModVal)})

		require.Equal(s.Block, object.Block())
		require.Equal(s.Elem, object.Elem())
		require.Equal(s.ModName != "", object.HasMod())

		id := object.ID()
		require.Equal(id, object.ID())
		require.Equal(id, object.String())
		require.Equal(object.Type(), object.Type())

		require.True(object.IsEqual(legacy))
		require.True(legacy.IsEqual(object))
		require.Equal(naming.TypeOf(object.Tuple()), legacy.Type())
	}
}
