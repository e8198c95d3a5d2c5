package locate

import (
	"context"
	"errors"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/nourabosen/USearch/backend"
	"github.com/nourabosen/USearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeTool installs a script called fakelocate on an isolated PATH.
func newFakeTool(t *testing.T, body string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	dir := t.TempDir()
	_, err := backend.WriteScript(dir, "fakelocate", body)
	require.NoError(t, err)
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestNewBackend(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		b, err := NewBackend()
		require.NoError(t, err)
		assert.Equal(t, DefaultCandidates, b.candidates)
		assert.Equal(t, backend.DefaultPolicy(), b.policy)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		b, err := NewBackend(WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, b.logger)
	})

	t.Run("policy is normalized", func(t *testing.T) {
		b, err := NewBackend(WithPolicy(backend.Policy{IndexedTimeout: time.Second}))
		require.NoError(t, err)
		assert.Equal(t, time.Second, b.policy.IndexedTimeout)
		assert.Equal(t, backend.DefaultMaxIndexedResults, b.policy.MaxIndexedResults)
	})
}

func TestSearchIndexed(t *testing.T) {
	newFakeTool(t, `[ "$1" = "-i" ] && [ "$2" = "--" ] || exit 2
printf '/home/x/%s.txt\n\n/home/y/%s-old.txt\n' "$3" "$3"`)

	b, err := NewBackend(WithCandidates("fakelocate"))
	require.NoError(t, err)

	result := b.SearchIndexed(context.Background(), "doc")
	require.Equal(t, core.StatusOk, result.Status)
	assert.Equal(t, []string{"/home/x/doc.txt", "/home/y/doc-old.txt"}, result.Paths)
}

func TestSearchIndexed_TermWithSpacesIsOneArgument(t *testing.T) {
	newFakeTool(t, `echo "$#:$3"`)

	b, err := NewBackend(WithCandidates("fakelocate"))
	require.NoError(t, err)

	result := b.SearchIndexed(context.Background(), "annual report")
	require.True(t, result.Ok())
	assert.Equal(t, []string{"3:annual report"}, result.Paths)
}

func TestSearchIndexed_LeadingDashTermIsNotAnOption(t *testing.T) {
	newFakeTool(t, `for a in "$@"; do
  case "$a" in
    --) break ;;
    --help) echo "Usage: fakelocate [OPTION]... PATTERN..."; exit 0 ;;
  esac
done
printf '%s\n' "$@"`)

	b, err := NewBackend(WithCandidates("fakelocate"))
	require.NoError(t, err)

	for _, term := range []string{"--help", "-r", "--version"} {
		t.Run(term, func(t *testing.T) {
			result := b.SearchIndexed(context.Background(), term)
			require.True(t, result.Ok())
			assert.Equal(t, []string{"-i", "--", term}, result.Paths)
		})
	}
}

func TestSearchRaw_ForwardsArgumentsVerbatim(t *testing.T) {
	newFakeTool(t, `printf '%s\n' "$@"`)

	b, err := NewBackend(WithCandidates("fakelocate"))
	require.NoError(t, err)

	result := b.SearchRaw(context.Background(), []string{"-i", "foo"})
	require.True(t, result.Ok())
	assert.Equal(t, []string{"-i", "foo"}, result.Paths)
}

func TestSearch_NoMatchesIsOk(t *testing.T) {
	newFakeTool(t, `exit 1`)

	b, err := NewBackend(WithCandidates("fakelocate"))
	require.NoError(t, err)

	result := b.SearchIndexed(context.Background(), "nothing")
	assert.Equal(t, core.StatusOk, result.Status)
	assert.Empty(t, result.Paths)
}

func TestSearch_ToolErrorIsExecutionFailure(t *testing.T) {
	newFakeTool(t, `echo /should/not/leak; exit 2`)

	b, err := NewBackend(WithCandidates("fakelocate"))
	require.NoError(t, err)

	result := b.SearchIndexed(context.Background(), "x")
	assert.Equal(t, core.StatusExecutionFailed, result.Status)
	assert.Empty(t, result.Paths)

	var exitErr *ExitError
	require.True(t, errors.As(result.Err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.ErrorIs(t, result.AsError(), core.ErrBackendExecution)
}

func TestSearch_Unavailable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	b, err := NewBackend()
	require.NoError(t, err)
	assert.False(t, b.Available())

	result := b.SearchIndexed(context.Background(), "x")
	assert.Equal(t, core.StatusUnavailable, result.Status)
	assert.Empty(t, result.Paths)

	result = b.SearchRaw(context.Background(), []string{"-i", "x"})
	assert.Equal(t, core.StatusUnavailable, result.Status)
}

func TestSearch_TimeoutIsRecovered(t *testing.T) {
	newFakeTool(t, `echo /early; sleep 5`)

	b, err := NewBackend(
		WithCandidates("fakelocate"),
		WithPolicy(backend.Policy{IndexedTimeout: 100 * time.Millisecond}),
	)
	require.NoError(t, err)

	start := time.Now()
	result := b.SearchIndexed(context.Background(), "x")
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, core.StatusTimedOut, result.Status)
	assert.Empty(t, result.Paths)
}

func TestSearch_CallerCancellation(t *testing.T) {
	newFakeTool(t, `sleep 5`)

	b, err := NewBackend(WithCandidates("fakelocate"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	result := b.SearchIndexed(ctx, "x")
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.False(t, result.Ok())
	assert.Empty(t, result.Paths)
}

func TestSearch_ResultCap(t *testing.T) {
	newFakeTool(t, `i=0; while [ $i -lt 100 ]; do i=$((i+1)); echo /f$i; done`)

	b, err := NewBackend(
		WithCandidates("fakelocate"),
		WithPolicy(backend.Policy{MaxIndexedResults: 10}),
	)
	require.NoError(t, err)

	result := b.SearchIndexed(context.Background(), "f")
	require.True(t, result.Ok())
	assert.Len(t, result.Paths, 10)
	assert.Equal(t, "/f1", result.Paths[0])
}

func TestWithCommand(t *testing.T) {
	newFakeTool(t, `printf '%s\n' "$@"`)

	b, err := NewBackend(WithCommand("fakelocate -d '/var/lib/my db'"))
	require.NoError(t, err)
	assert.True(t, b.Available())

	result := b.SearchIndexed(context.Background(), "needle")
	require.True(t, result.Ok())
	assert.Equal(t, []string{"-d", "/var/lib/my db", "-i", "--", "needle"}, result.Paths)
}
