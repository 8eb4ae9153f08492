package storage

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"
)

// NewUploadName builds a unique storage name for an uploaded file, keeping
// the original extension: <field>-<unixmillis>-<random>.<ext>. Uniqueness is
// best-effort; the write volume here makes a collision negligible.
func NewUploadName(field, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalFilename)))

	return fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
}
