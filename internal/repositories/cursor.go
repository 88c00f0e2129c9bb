package repositories

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCursor reports a page token the server did not mint.
var ErrInvalidCursor = errors.New("invalid page cursor")

// Page tokens are opaque to clients. Internally they encode the row
// offset of the next page as base64("o:<offset>").
const cursorPrefix = "o:"

// EncodeCursor mints the page token pointing at the given row offset.
func EncodeCursor(offset int) string {
	return base64.URLEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset)))
}

// DecodeCursor parses a client-supplied page token. An empty token means
// the first page. Anything unparseable returns ErrInvalidCursor.
func DecodeCursor(token string) (int, error) {
	if token == "" {
		return 0, nil
	}

	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCursor, token)
	}

	payload := string(raw)
	if !strings.HasPrefix(payload, cursorPrefix) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCursor, token)
	}

	offset, err := strconv.Atoi(strings.TrimPrefix(payload, cursorPrefix))
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCursor, token)
	}
	return offset, nil
}
