// Package symbol turns rendered candidates into a unique symbol alphabet.
package symbol

import (
	"crypto/sha256"
	"encoding/hex"
	"image"
	"sync"

	"golang.org/x/image/draw"
)

// Hash is the content digest of a downsampled candidate. Candidates with the
// same Hash are duplicates even when their full-size pixels differ.
type Hash [sha256.Size]byte

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// HashImage downsamples img to size x size and hashes the RGB bytes.
func HashImage(img image.Image, size int) Hash {
	small := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)

	rgb := make([]byte, 0, size*size*3)
	for i := 0; i < len(small.Pix); i += 4 {
		rgb = append(rgb, small.Pix[i], small.Pix[i+1], small.Pix[i+2])
	}
	return sha256.Sum256(rgb)
}

// Guard accepts each distinct hash once. The check and the insertion happen
// under one lock.
type Guard struct {
	hashSize int
	similar  *similarity

	mu   sync.Mutex
	seen map[Hash]struct{}
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// NewGuard creates a guard with an empty hash set.
func NewGuard(hashSize int, opts ...GuardOption) *Guard {
	g := &Guard{
		hashSize: hashSize,
		seen:     make(map[Hash]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Accept hashes img and records it. It returns false, leaving the guard
// unchanged, when the hash was already recorded.
func (g *Guard) Accept(img image.Image) bool {
	_, ok := g.Admit(img)
	return ok
}

// Admit is Accept that also returns the hash of img.
func (g *Guard) Admit(img image.Image) (Hash, bool) {
	h := HashImage(img, g.hashSize)

	var fp fingerprint
	if g.similar != nil {
		fp = g.similar.fingerprint(img)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.seen[h]; dup {
		return h, false
	}
	if g.similar != nil && g.similar.near(fp) {
		return h, false
	}

	g.seen[h] = struct{}{}
	if g.similar != nil {
		g.similar.add(h, fp)
	}
	return h, true
}

// Hash computes the guard's hash of img without recording it.
func (g *Guard) Hash(img image.Image) Hash {
	return HashImage(img, g.hashSize)
}

// Seed records hashes as already accepted. Seeded hashes only block exact
// duplicates.
func (g *Guard) Seed(hashes ...Hash) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, h := range hashes {
		g.seen[h] = struct{}{}
	}
}

// Contains reports whether h has been accepted.
func (g *Guard) Contains(h Hash) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.seen[h]
	return ok
}

// Len returns the number of accepted hashes.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.seen)
}
