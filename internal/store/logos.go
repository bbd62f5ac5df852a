package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxLogoBytes caps the size of a single imported logo.
const MaxLogoBytes = 512 * 1024

var ErrLogoNotFound = errors.New("logo not found")

// Logo is one stored image.
type Logo struct {
	Ref         string
	ContentType string
	Bytes       []byte
}

// NormalizeRef turns a posting's logo reference into its storage key: the
// lower-cased base name, so "/img/CLogo1.jpg" and "clogo1.jpg" match.
func NormalizeRef(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	base := strings.ToLower(filepath.Base(filepath.ToSlash(ref)))
	if base == "." || base == "/" {
		return ""
	}
	return base
}

// PutLogo stores one image under ref, replacing any previous one.
func (d *DB) PutLogo(ctx context.Context, ref string, b []byte) error {
	key := NormalizeRef(ref)
	if key == "" {
		return fmt.Errorf("put logo: empty ref")
	}
	if len(b) == 0 || len(b) > MaxLogoBytes {
		return fmt.Errorf("put logo %s: size %d outside 1..%d", key, len(b), MaxLogoBytes)
	}

	ct := http.DetectContentType(b)
	if !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("put logo %s: not an image (%s)", key, ct)
	}

	_, err := d.Pool.ExecContext(ctx, `
INSERT OR REPLACE INTO logos(ref, content_type, bytes, imported_at)
VALUES(?,?,?,?);`,
		key, ct, b, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("put logo %s: %w", key, err)
	}
	return nil
}

// GetLogo loads the image stored for ref.
func (d *DB) GetLogo(ctx context.Context, ref string) (Logo, error) {
	key := NormalizeRef(ref)
	if key == "" {
		return Logo{}, ErrLogoNotFound
	}

	l := Logo{Ref: key}
	err := d.Pool.QueryRowContext(ctx,
		`SELECT content_type, bytes FROM logos WHERE ref = ? LIMIT 1;`, key,
	).Scan(&l.ContentType, &l.Bytes)
	if errors.Is(err, sql.ErrNoRows) {
		return Logo{}, ErrLogoNotFound
	}
	if err != nil {
		return Logo{}, fmt.Errorf("get logo %s: %w", key, err)
	}
	return l, nil
}

// ImportLogos loads the images named by refs from dir. Missing or unusable
// files are logged and skipped; the posting then simply has no logo.
func (d *DB) ImportLogos(ctx context.Context, dir string, refs []string, log *slog.Logger) (imported int, err error) {
	if log == nil {
		log = slog.Default()
	}
	if strings.TrimSpace(dir) == "" {
		return 0, nil
	}

	for _, ref := range refs {
		key := NormalizeRef(ref)
		if key == "" {
			continue
		}
		b, err := readLimited(filepath.Join(dir, filepath.Base(strings.TrimSpace(ref))))
		if err != nil {
			log.Warn("logo skipped", "ref", key, "err", err)
			continue
		}
		if err := d.PutLogo(ctx, key, b); err != nil {
			if ctx.Err() != nil {
				return imported, ctx.Err()
			}
			log.Warn("logo skipped", "ref", key, "err", err)
			continue
		}
		imported++
	}
	return imported, nil
}

func readLimited(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(io.LimitReader(f, MaxLogoBytes+1))
	if err != nil {
		return nil, err
	}
	if len(b) > MaxLogoBytes {
		return nil, fmt.Errorf("larger than %d bytes", MaxLogoBytes)
	}
	return b, nil
}
