package memory

import (
	"context"
	"testing"

	terrors "github.com/go-tabkit/tabkit/errors"
	"github.com/stretchr/testify/require"
)

func TestMemoryDataSource(t *testing.T) {
	data := [][]interface{}{
		{"Bob", 30},
		{"Jim", 45},
	}
	source := CreateDataSource(data)
	it, err := source.Open(context.Background())
	require.Nil(t, err)
	defer it.Close()

	require.True(t, it.HasNext())
	row, err := it.Next()
	require.Nil(t, err)
	require.Equal(t, []interface{}{"Bob", 30}, row)

	row, err = it.Next()
	require.Nil(t, err)
	require.Equal(t, []interface{}{"Jim", 45}, row)

	require.False(t, it.HasNext())
	_, err = it.Next()
	require.Equal(t, terrors.NoMoreRowsError{}, err)
}

func TestMemoryDataSourceReopen(t *testing.T) {
	data := [][]interface{}{
		{1},
		{2},
	}
	source := CreateDataSource(data)

	// each Open yields an independent iterator at the first row
	first, err := source.Open(context.Background())
	require.Nil(t, err)
	defer first.Close()
	row, err := first.Next()
	require.Nil(t, err)
	require.Equal(t, []interface{}{1}, row)

	second, err := source.Open(context.Background())
	require.Nil(t, err)
	defer second.Close()
	row, err = second.Next()
	require.Nil(t, err)
	require.Equal(t, []interface{}{1}, row)
}

func TestMemoryDataSourceEmpty(t *testing.T) {
	source := CreateDataSource(nil)
	it, err := source.Open(context.Background())
	require.Nil(t, err)
	defer it.Close()
	require.False(t, it.HasNext())
}
