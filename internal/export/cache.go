package export

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"

	"glassdesk/internal/domain/document"
	"glassdesk/internal/render"
)

// repCache memoizes rendered HTML keyed by document content, compressed so
// long editing sessions with many documents stay cheap. A key covers the full
// document state; any edit produces a new key, so entries are never stale.
type repCache struct {
	mu      sync.RWMutex
	entries map[[32]byte][]byte
}

func newRepCache() *repCache {
	return &repCache{entries: make(map[[32]byte][]byte)}
}

func contentKey(doc *document.Document) ([32]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(raw), nil
}

func (c *repCache) get(key [32]byte, doc *document.Document) (*render.Representation, bool) {
	c.mu.RLock()
	compressed, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, false
	}
	html, err := io.ReadAll(zr)
	if err != nil {
		return nil, false
	}
	if err := zr.Close(); err != nil {
		return nil, false
	}
	return render.Cached(doc, html), true
}

func (c *repCache) put(key [32]byte, html []byte) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(html); err != nil {
		return
	}
	if err := zw.Close(); err != nil {
		return
	}

	c.mu.Lock()
	c.entries[key] = buf.Bytes()
	c.mu.Unlock()
}
