package middlewarex

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	rq := require.New(t)

	rq.Equal("short", string(truncate([]byte("short"), 10)))
	rq.Equal("unlimited", string(truncate([]byte("unlimited"), 0)))
	rq.Equal("abc"+truncatedSuffix, string(truncate([]byte("abcdef"), 3)))
}

func TestLevelByStatus(t *testing.T) {
	rq := require.New(t)

	rq.Equal(slog.LevelInfo, levelByStatus(http.StatusCreated))
	rq.Equal(slog.LevelWarn, levelByStatus(http.StatusNotFound))
	rq.Equal(slog.LevelError, levelByStatus(http.StatusInternalServerError))
}
