package docscrape_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts rows matching header arity", func(t *testing.T) {
		t.Parallel()

		table := docscrape.NewTable("a", "b")
		table.Append("1", "2")
		table.Append("3", "4")

		require.NoError(t, table.Validate())
		assert.Equal(t, 2, table.Len())
	})

	t.Run("rejects row with wrong arity", func(t *testing.T) {
		t.Parallel()

		table := docscrape.NewTable("a", "b")
		table.Append("1", "2")
		table.Append("3")

		err := table.Validate()
		require.Error(t, err)
		assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
		assert.Contains(t, docscrape.ErrorMessage(err), "row 2")
	})

	t.Run("rejects missing header", func(t *testing.T) {
		t.Parallel()

		err := (&docscrape.Table{}).Validate()
		assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
	})
}

func TestTable_Records(t *testing.T) {
	t.Parallel()

	table := docscrape.NewTable("a", "b")
	table.Append("1", "2")

	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, table.Records())
}

func TestWriteRows(t *testing.T) {
	t.Parallel()

	t.Run("writes space separated records", func(t *testing.T) {
		t.Parallel()

		table := docscrape.NewTable("Ссылка", "Версия", "Статус")
		table.Append("https://docs.python.org/3.13/", "3.13", "stable")
		table.Append("https://docs.python.org/3.14/", "3.14", "")

		var buf bytes.Buffer
		require.NoError(t, docscrape.WriteRows(&buf, table))

		want := "Ссылка Версия Статус\n" +
			"https://docs.python.org/3.13/ 3.13 stable\n" +
			"https://docs.python.org/3.14/ 3.14 \n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("rejects invalid table", func(t *testing.T) {
		t.Parallel()

		table := docscrape.NewTable("a")
		table.Append("1", "2")

		var buf bytes.Buffer
		require.Error(t, docscrape.WriteRows(&buf, table))
		assert.Empty(t, buf.String())
	})
}
