package recordio

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rel "github.com/JoseManuelVargas/ud-mcic-db-t4"
	"github.com/JoseManuelVargas/ud-mcic-db-t4/att"
)

func TestDecode(t *testing.T) {
	t.Run("Should decode a JSON record", func(t *testing.T) {
		rec, err := Decode([]byte(`{"t_set": ["A", "B", "C"], "l_set": [["A", "B"], ["B", "C"]]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, rec.TSet)
		assert.Equal(t, [][]string{{"A", "B"}, {"B", "C"}}, rec.LSet)
	})

	t.Run("Should decode a YAML record", func(t *testing.T) {
		rec, err := Decode([]byte("t_set: [A, B]\nl_set:\n  - [A, B]\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, rec.TSet)
		assert.Equal(t, [][]string{{"A", "B"}}, rec.LSet)
	})

	t.Run("Should leave absent fields nil", func(t *testing.T) {
		rec, err := Decode([]byte(`{"t_set": ["A"]}`))
		require.NoError(t, err)
		assert.Nil(t, rec.LSet)

		_, err = rel.LoadSchema(rec)
		var mf *rel.MissingFieldError
		require.ErrorAs(t, err, &mf)
		assert.Equal(t, "l_set", mf.Field)
	})

	t.Run("Should keep present empty lists", func(t *testing.T) {
		rec, err := Decode([]byte(`{"t_set": ["A"], "l_set": []}`))
		require.NoError(t, err)
		assert.NotNil(t, rec.LSet)
		s, err := rel.LoadSchema(rec)
		require.NoError(t, err)
		assert.Equal(t, att.ParseSet("A"), s.Attributes())
	})

	t.Run("Should reject a dependency that is not a list", func(t *testing.T) {
		_, err := Decode([]byte(`{"t_set": ["A"], "l_set": ["AB"]}`))
		var md *rel.MalformedDependencyError
		require.ErrorAs(t, err, &md)
		assert.Equal(t, 0, md.Index)
	})

	t.Run("Should reject invalid syntax", func(t *testing.T) {
		_, err := Decode([]byte(`{"t_set": [`))
		assert.Error(t, err)
	})
}

func TestLoadSave(t *testing.T) {
	schema := rel.MustSchema("ABCD", "AB->C,C->D")

	for _, path := range []string{"schema.json", "schema.yaml"} {
		t.Run("Should round trip "+path, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, SaveSchema(fs, path, schema))

			loaded, err := LoadSchema(fs, path)
			require.NoError(t, err)
			assert.Equal(t, schema.Attributes(), loaded.Attributes())
			assert.True(t, schema.Dependencies().Equal(loaded.Dependencies()))
		})
	}

	t.Run("Should write indented JSON", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, SaveSchema(fs, "out.json", schema))
		data, err := afero.ReadFile(fs, "out.json")
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  \"t_set\"")
		assert.Contains(t, string(data), `"l_set"`)
	})

	t.Run("Should report a missing file as an IOError", func(t *testing.T) {
		_, err := Load(afero.NewMemMapFs(), "absent.json")
		var ioe *rel.IOError
		require.ErrorAs(t, err, &ioe)
		assert.Equal(t, "read", ioe.Op)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("Should report a failed write as an IOError", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
		err := SaveSchema(fs, "out.json", schema)
		var ioe *rel.IOError
		require.ErrorAs(t, err, &ioe)
		assert.Equal(t, "write", ioe.Op)
	})
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, YAML, FormatOf("a/b.yaml"))
	assert.Equal(t, YAML, FormatOf("b.YML"))
	assert.Equal(t, JSON, FormatOf("b.json"))
	assert.Equal(t, JSON, FormatOf("b"))
}
