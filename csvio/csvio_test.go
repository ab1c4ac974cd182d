package csvio

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r *Reader) [][]string {
	t.Helper()

	var rows [][]string

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows
		}

		require.NoError(t, err)
		rows = append(rows, append([]string(nil), rec.Values()...))
	}
}

func TestReaderHeader(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader("Id,Name\n1,Ann\n2,Bob\n"), WithIgnoreCase(true))

	first, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"Id", "Name"}, first.ColumnNames())
	assert.Equal(t, 1, first.IndexOf("name"))
	assert.Equal(t, 1, r.Row())

	second, err := r.Read()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, first.Identifier(), second.Identifier(), "rows of one reader share a layout")
	assert.Equal(t, "Ann", first.Value(1))
	assert.Equal(t, "Bob", second.Value(1))
	assert.Equal(t, 3, r.Line())

	_, err = r.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderHeaderless(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader("7,-1\n42,4711\n"), WithHeader(false))
	assert.False(t, r.Layout().HasNames())
	assert.Equal(t, [][]string{{"7", "-1"}, {"42", "4711"}}, readAll(t, r))

	named := NewReader(strings.NewReader("1,2\n"), WithHeader(false), WithColumnNames("A", "B"))
	rec, err := named.Read()
	require.NoError(t, err)
	assert.Equal(t, 1, rec.IndexOf("B"))
}

func TestReaderReuseRecord(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader("A;B\n1;2\n3;4;5\n"), WithSeparator(';'), WithReuseRecord(true))
	assert.True(t, r.ReusesRecord())

	first, err := r.Read()
	require.NoError(t, err)
	id := first.Identifier()

	second, err := r.Read()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, id, second.Identifier())
	assert.Equal(t, []string{"3", "4", "5"}, second.Values())
}

func TestReaderEmptyInput(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader(""))

	_, err := r.Read()
	require.ErrorIs(t, err, io.EOF)

	_, err = r.Read()
	require.ErrorIs(t, err, io.EOF)
	assert.NotNil(t, r.Layout())
}

func TestReaderErrors(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader("A,B\n1,2\n3\n"), WithStrictWidth(true))

	_, err := r.Read()
	require.NoError(t, err)

	_, err = r.Read()
	require.ErrorIs(t, err, ErrFieldCount)
	assert.Contains(t, err.Error(), "row 2")

	bad := NewReader(strings.NewReader("A\n\"x\n"))
	_, err = bad.Read()

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.ErrorIs(t, err, ErrUnterminatedQuote)
}

func TestReaderHeaderErrorAfterLayout(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader("a,\"b\n"), WithHeader(true))
	assert.Nil(t, r.Layout())

	for range 2 {
		_, err := r.Read()
		require.ErrorIs(t, err, ErrUnterminatedQuote)
		assert.Contains(t, err.Error(), "csvio: header")
	}
}

func TestWriterHeaderAndRecords(t *testing.T) {
	t.Parallel()

	var sb strings.Builder

	w := NewWriter(&sb, WithColumnNames("A", "B"), WithCRLF(true))

	rec := w.NewRecord()
	assert.Equal(t, 2, rec.Count())
	assert.Equal(t, w.Layout().ID(), rec.Identifier())

	rec.SetValue(0, "1")
	rec.SetValue(1, "x,y")
	require.NoError(t, w.Write(rec))

	rec.Clear()
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Flush())

	assert.Equal(t, "A,B\r\n1,\"x,y\"\r\n,\r\n", sb.String())
}

func TestWriterHeaderless(t *testing.T) {
	t.Parallel()

	var sb strings.Builder

	w := NewWriter(&sb, WithColumnCount(3), WithSeparator('\t'))
	rec := w.NewRecord()
	rec.SetValue(2, "z")

	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Flush())
	assert.Equal(t, "\t\tz\n", sb.String())

	var noHeader strings.Builder

	w = NewWriter(&noHeader, WithColumnNames("A"), WithHeader(false))
	rec = w.NewRecord()
	rec.SetValue(0, "v")
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Flush())
	assert.Equal(t, "v\n", noHeader.String())
}

func TestOpenCreateZstd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	for _, name := range []string{"plain.csv", "packed.csv.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)

			wc, err := Create(path)
			require.NoError(t, err)

			w := NewWriter(wc, WithColumnNames("N"))
			rec := w.NewRecord()

			for _, v := range []string{"1", "2", "3"} {
				rec.SetValue(0, v)
				require.NoError(t, w.Write(rec))
			}

			require.NoError(t, w.Flush())
			require.NoError(t, wc.Close())

			rc, err := Open(path)
			require.NoError(t, err)

			defer rc.Close()

			assert.Equal(t, [][]string{{"1"}, {"2"}, {"3"}}, readAll(t, NewReader(rc)))
		})
	}

	assert.True(t, Compressed("x.ZST"))
	assert.False(t, Compressed("x.csv"))

	_, err := Open(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
