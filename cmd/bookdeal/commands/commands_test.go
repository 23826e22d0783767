package commands

import (
	"bytes"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BOOKDEAL_OUTPUT", "text")
	t.Setenv("BOOKDEAL_LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)

	assert.Equal(t, `Contracts signed on 2024-11-09:
- Jane Austen for 'Pride and Prejudice'
- Mark Twain for 'The Adventures of Huckleberry Finn'
Total royalties for Jane Austen: 22%
Total royalties for Mark Twain: 15%
Authors of 'The Adventures of Huckleberry Finn': Jane Austen, Mark Twain
`, out)
}

func TestDemoJSON(t *testing.T) {
	out, err := run(t, "demo", "--output", "json")
	require.NoError(t, err)

	var view demoView
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(out, &view))

	require.Len(t, view.Contracts, 2)
	assert.Equal(t, "Jane Austen", view.Contracts[0].Author)
	assert.Equal(t, 10, view.Contracts[0].Royalties)
	assert.NotEmpty(t, view.Contracts[0].ID)
	assert.Equal(t, []royaltyView{{"Jane Austen", 22}, {"Mark Twain", 15}}, view.Royalties)
	require.Len(t, view.BookAuthors, 1)
	assert.Equal(t, []string{"Jane Austen", "Mark Twain"}, view.BookAuthors[0].Authors)
}

func TestContracts(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		out, err := run(t, "contracts")
		require.NoError(t, err)
		assert.Equal(t, `- Jane Austen for 'Pride and Prejudice' on 2024-11-09 (10%)
- Jane Austen for 'The Adventures of Huckleberry Finn' on 2024-11-10 (12%)
- Mark Twain for 'The Adventures of Huckleberry Finn' on 2024-11-09 (15%)
`, out)
	})

	t.Run("by date", func(t *testing.T) {
		out, err := run(t, "contracts", "--date", "2024-11-10")
		require.NoError(t, err)
		assert.Equal(t, "- Jane Austen for 'The Adventures of Huckleberry Finn' on 2024-11-10 (12%)\n", out)
	})

	t.Run("by date without match", func(t *testing.T) {
		out, err := run(t, "contracts", "--date", "1999-01-01", "-o", "json")
		require.NoError(t, err)
		assert.JSONEq(t, "[]", out)
	})
}

func TestRoyalties(t *testing.T) {
	out, err := run(t, "royalties")
	require.NoError(t, err)
	assert.Equal(t, "Total royalties for Jane Austen: 22%\nTotal royalties for Mark Twain: 15%\n", out)
}

func TestAuthors(t *testing.T) {
	t.Run("known title", func(t *testing.T) {
		out, err := run(t, "authors", "--title", "Pride and Prejudice")
		require.NoError(t, err)
		assert.Equal(t, "Authors of 'Pride and Prejudice': Jane Austen\n", out)
	})

	t.Run("unknown title", func(t *testing.T) {
		_, err := run(t, "authors", "--title", "Life of Jeff")
		assert.ErrorContains(t, err, `no book titled "Life of Jeff"`)
	})

	t.Run("title is required", func(t *testing.T) {
		_, err := run(t, "authors")
		assert.Error(t, err)
	})
}

func TestConfig(t *testing.T) {
	t.Run("output from env", func(t *testing.T) {
		t.Setenv("BOOKDEAL_OUTPUT", "json")
		t.Setenv("BOOKDEAL_LOG_LEVEL", "warn")

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, Config{LogLevel: "warn", Output: "json"}, cfg)
		assert.NoError(t, cfg.validate())
	})

	t.Run("flag overrides env", func(t *testing.T) {
		out, err := run(t, "royalties", "-o", "json")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"author":"Jane Austen","royalties":22},{"author":"Mark Twain","royalties":15}]`, out)
	})

	t.Run("unknown output", func(t *testing.T) {
		_, err := run(t, "royalties", "-o", "yaml")
		assert.ErrorContains(t, err, `unknown output "yaml"`)
	})

	t.Run("unknown log level", func(t *testing.T) {
		cfg := Config{LogLevel: "loud", Output: outputText}
		assert.ErrorContains(t, cfg.validate(), `unknown log level "loud"`)
	})
}
