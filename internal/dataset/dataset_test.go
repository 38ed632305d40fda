package dataset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlforge/internal/dataset"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("rectangular table passes", func(t *testing.T) {
		t.Parallel()
		ds := dataset.Dataset{
			Headers: []string{"id", "name"},
			Rows:    [][]string{{"1", "alice"}, {"2", "bob"}},
		}
		assert.NoError(t, ds.Validate())
	})

	t.Run("headers without rows pass", func(t *testing.T) {
		t.Parallel()
		ds := dataset.Dataset{Headers: []string{"id"}}
		assert.NoError(t, ds.Validate())
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		err := dataset.Dataset{}.Validate()
		require.Error(t, err)

		var shapeErr *dataset.ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, 0, shapeErr.Row)
		assert.Contains(t, err.Error(), "empty input")
	})

	t.Run("rows without headers", func(t *testing.T) {
		t.Parallel()
		ds := dataset.Dataset{Rows: [][]string{{"1"}}}
		err := ds.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing header row")
	})

	t.Run("ragged row reports its position", func(t *testing.T) {
		t.Parallel()
		ds := dataset.Dataset{
			Headers: []string{"a", "b", "c"},
			Rows:    [][]string{{"1", "2", "3"}, {"4", "5"}},
		}
		err := ds.Validate()
		require.Error(t, err)

		var shapeErr *dataset.ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, 2, shapeErr.Row)
		assert.Equal(t, "invalid input shape: row 2 has 2 cells, want 3", err.Error())
	})
}

func TestShapeErrorIsDistinguishable(t *testing.T) {
	t.Parallel()

	err := dataset.Dataset{}.Validate()
	var shapeErr *dataset.ShapeError
	assert.True(t, errors.As(err, &shapeErr))
}

func TestColumn(t *testing.T) {
	t.Parallel()

	ds := dataset.Dataset{
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1", "x"}, {"2", "y"}, {"3", "z"}},
	}

	assert.Equal(t, []string{"1", "2", "3"}, ds.Column(0))
	assert.Equal(t, []string{"x", "y", "z"}, ds.Column(1))

	t.Run("short rows are skipped", func(t *testing.T) {
		t.Parallel()
		ragged := dataset.Dataset{
			Headers: []string{"a", "b"},
			Rows:    [][]string{{"1", "x"}, {"2"}},
		}
		assert.Equal(t, []string{"x"}, ragged.Column(1))
	})
}
