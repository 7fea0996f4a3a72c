package frame

import (
	"context"
	"testing"

	"github.com/go-tabkit/tabkit"
	"github.com/go-tabkit/tabkit/datasource/memory"
	terrors "github.com/go-tabkit/tabkit/errors"
	"github.com/go-tabkit/tabkit/schema"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func peopleData() [][]interface{} {
	return [][]interface{}{
		{"Bob", 30, 8},
		{"Jim", 45, 9.5},
		{"Sue", 25, 7},
		{"George", 15, 6},
		{"Jennifer", 18, 8.5},
	}
}

func TestCreateInfersSchema(t *testing.T) {
	tc := &Context{}
	f, err := Create(context.Background(), tc, memory.CreateDataSource(peopleData()), nil)
	require.Nil(t, err)
	require.NotEmpty(t, f.ID())
	require.Equal(t, 5, f.NumRows())

	// the third column held a mix of ints and floats, so it widens to float
	require.Equal(t, []string{"C0", "C1", "C2"}, f.Schema().ColumnNames())
	types := f.Schema().ColumnTypes()
	require.IsType(t, &tabkit.StringColumnType{}, types[0])
	require.IsType(t, &tabkit.IntColumnType{}, types[1])
	require.IsType(t, &tabkit.FloatColumnType{}, types[2])
}

func TestCreateValidationCastsCells(t *testing.T) {
	tc := &Context{}
	f, err := Create(context.Background(), tc, memory.CreateDataSource(peopleData()), &CreateOpts{ValidateSchema: true})
	require.Nil(t, err)

	// the ints in the float column were cast to floats
	expected := []float64{8.0, 9.5, 7.0, 6.0, 8.5}
	for i, row := range f.Rows() {
		v, err := row.GetFloat("C2")
		require.Nil(t, err)
		require.Equal(t, expected[i], v)
	}
}

func TestCreateWithColumnNames(t *testing.T) {
	tc := &Context{}
	f, err := Create(context.Background(), tc, memory.CreateDataSource(peopleData()), &CreateOpts{
		ColumnNames:    []string{"name", "age", "shoe_size"},
		ValidateSchema: true,
	})
	require.Nil(t, err)
	require.Equal(t, []string{"name", "age", "shoe_size"}, f.Schema().ColumnNames())

	name, err := f.Rows()[4].GetString("name")
	require.Nil(t, err)
	require.Equal(t, "Jennifer", name)
	age, err := f.Rows()[4].GetInt("age")
	require.Nil(t, err)
	require.Equal(t, int64(18), age)
}

func TestCreateLenientCastFailureBecomesAbsent(t *testing.T) {
	data := [][]interface{}{
		{1, 2, 3},
		{4, "five", 6},
	}
	declared := schema.CreateSchema()
	for _, name := range []string{"a", "b", "c"} {
		_, err := declared.CreateColumn(name, &tabkit.IntColumnType{})
		require.Nil(t, err)
	}

	tc := &Context{}
	f, err := Create(context.Background(), tc, memory.CreateDataSource(data), &CreateOpts{
		Schema:         declared,
		ValidateSchema: true,
	})
	require.Nil(t, err)
	require.Equal(t, 2, f.NumRows())

	require.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, f.Rows()[0].Cells())
	require.Equal(t, []interface{}{int64(4), nil, int64(6)}, f.Rows()[1].Cells())
	require.True(t, f.Rows()[1].IsNil("b"))
}

func TestCreatePassThroughNeverAltersCells(t *testing.T) {
	data := [][]interface{}{
		{1, 2, 3},
		{4, "five", 6},
	}
	declared := schema.CreateSchema()
	for _, name := range []string{"a", "b", "c"} {
		_, err := declared.CreateColumn(name, &tabkit.IntColumnType{})
		require.Nil(t, err)
	}

	tc := &Context{}
	f, err := Create(context.Background(), tc, memory.CreateDataSource(data), &CreateOpts{Schema: declared})
	require.Nil(t, err)

	// no casting occurred, even though the data disagrees with the schema
	require.Equal(t, []interface{}{1, 2, 3}, f.Rows()[0].Cells())
	require.Equal(t, []interface{}{4, "five", 6}, f.Rows()[1].Cells())
}

func TestCreatePassThroughRowsPrint(t *testing.T) {
	// printing must work even when uncast cells disagree with the
	// declared column types
	data := [][]interface{}{
		{1, "five"},
	}
	declared := schema.CreateSchema()
	for _, name := range []string{"a", "b"} {
		_, err := declared.CreateColumn(name, &tabkit.IntColumnType{})
		require.Nil(t, err)
	}

	tc := &Context{}
	f, err := Create(context.Background(), tc, memory.CreateDataSource(data), &CreateOpts{Schema: declared})
	require.Nil(t, err)
	require.Equal(t, "{\"a\": 1,\"b\": five,}", f.Rows()[0].ToString())
}

func TestCreateStrictCastFailureAbortsLoad(t *testing.T) {
	data := [][]interface{}{
		{1, 2, 3},
		{4, "five", 6},
	}
	declared := schema.CreateSchema()
	for _, name := range []string{"a", "b", "c"} {
		_, err := declared.CreateColumn(name, &tabkit.IntColumnType{})
		require.Nil(t, err)
	}

	tc := &Context{}
	_, err := Create(context.Background(), tc, memory.CreateDataSource(data), &CreateOpts{
		Schema:         declared,
		ValidateSchema: true,
		Strict:         true,
	})
	require.NotNil(t, err)
	var cerr terrors.CellCastError
	require.ErrorAs(t, err, &cerr)
}

func TestCreateMissingContext(t *testing.T) {
	_, err := Create(context.Background(), nil, memory.CreateDataSource(peopleData()), nil)
	require.Equal(t, terrors.MissingContextError{}, err)
}

func TestCreateEmptySource(t *testing.T) {
	tc := &Context{}
	_, err := Create(context.Background(), tc, memory.CreateDataSource(nil), nil)
	require.Equal(t, terrors.EmptySourceError{}, err)
}

func TestCreateColumnNameLengthMismatch(t *testing.T) {
	tc := &Context{}
	_, err := Create(context.Background(), tc, memory.CreateDataSource(peopleData()), &CreateOpts{
		ColumnNames: []string{"x", "y"},
	})
	require.Equal(t, terrors.SchemaLengthMismatchError{Expected: 2, Actual: 3}, err)
}

func TestCreateRowWidthMismatchAbortsLoad(t *testing.T) {
	// the mismatched row appears beyond the sample, so it is caught during
	// materialization rather than resolution
	data := make([][]interface{}, 0, schema.DefaultSampleSize+1)
	for i := 0; i < schema.DefaultSampleSize; i++ {
		data = append(data, []interface{}{i, i})
	}
	data = append(data, []interface{}{1})

	tc := &Context{}
	_, err := Create(context.Background(), tc, memory.CreateDataSource(data), &CreateOpts{ValidateSchema: true})
	require.NotNil(t, err)
	var werr terrors.RowWidthMismatchError
	require.ErrorAs(t, err, &werr)
	require.Equal(t, 2, werr.Expected)
	require.Equal(t, 1, werr.Actual)
}

func TestCreateSampleBoundary(t *testing.T) {
	// a non-int value at row 101 is not reflected in the inferred schema;
	// under lenient validation it becomes an absent cell instead
	data := make([][]interface{}, 0, schema.DefaultSampleSize+1)
	for i := 0; i < schema.DefaultSampleSize; i++ {
		data = append(data, []interface{}{i})
	}
	data = append(data, []interface{}{"not a number"})

	tc := &Context{}
	f, err := Create(context.Background(), tc, memory.CreateDataSource(data), &CreateOpts{ValidateSchema: true})
	require.Nil(t, err)
	require.IsType(t, &tabkit.IntColumnType{}, f.Schema().ColumnTypes()[0])
	require.Equal(t, schema.DefaultSampleSize+1, f.NumRows())
	require.True(t, f.Rows()[schema.DefaultSampleSize].IsNil("C0"))
}

func TestCreateCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tc := &Context{BatchSize: 1}
	_, err := Create(ctx, tc, memory.CreateDataSource(peopleData()), &CreateOpts{ValidateSchema: true})
	require.ErrorIs(t, err, context.Canceled)
}
