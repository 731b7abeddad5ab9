package pgsql_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/nbpillmayer-student/pgcst/shaper"
)

// loadFixtures reads testdata/fixtures.txtar, a single archive holding
// every grammar-subset snippet these tests exercise, instead of a pile
// of tiny .sql fixture files.
func loadFixtures(t *testing.T) *txtar.Archive {
	t.Helper()
	data, err := os.ReadFile("testdata/fixtures.txtar")
	require.NoError(t, err, "reading fixtures archive")
	return txtar.Parse(data)
}

func fixture(t *testing.T, ar *txtar.Archive, name string) string {
	t.Helper()
	for _, f := range ar.Files {
		if f.Name == name {
			return strings.TrimSuffix(string(f.Data), "\n")
		}
	}
	t.Fatalf("fixture %q not found in archive", name)
	return ""
}

func TestFixturesParseTreeSitterWithoutError(t *testing.T) {
	ar := loadFixtures(t)
	p := mustParser(t)

	for _, f := range ar.Files {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			src := strings.TrimSuffix(string(f.Data), "\n")
			tree, err := p.ParseTreeSitter(src)
			require.NoErrorf(t, err, "fixture %q: %q", f.Name, src)
			require.NotZero(t, tree.NumNodes(), "fixture %q produced an empty tree", f.Name)
		})
	}
}

func TestFixtureMultiStatementFlattensToOneList(t *testing.T) {
	ar := loadFixtures(t)
	p := mustParser(t)
	src := fixture(t, ar, "multi_statement")

	tree, err := p.ParseTreeSitter(src)
	require.NoError(t, err)

	stmtmulti := nonTerminalKind(t, p, "stmtmulti")
	count := 0
	walk(tree, tree.Root(), func(id shaper.NodeID) {
		if tree.Node(id).Kind == stmtmulti {
			count++
		}
	})
	require.Equal(t, 1, count, "stmtmulti should flatten into exactly one node")
}

func TestFixtureCommentTriviaRoundTripsLossless(t *testing.T) {
	ar := loadFixtures(t)
	p := mustParser(t)

	for _, name := range []string{"line_comment_trivia", "block_comment_trivia"} {
		name := name
		t.Run(name, func(t *testing.T) {
			src := fixture(t, ar, name)
			tree, err := p.ParseLossless(src)
			require.NoError(t, err)

			var sb strings.Builder
			walk(tree, tree.Root(), func(id shaper.NodeID) {
				if tree.Node(id).IsToken {
					sb.WriteString(tree.Text(id))
				}
			})
			require.Equal(t, src, sb.String(), "lossless round-trip for %q", name)
		})
	}
}
