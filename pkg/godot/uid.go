package godot

import (
	"hash/fnv"
	"math/rand"
)

const uidChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// makeUID derives a Godot resource uid from the scene seed and a stable key.
// The same (seed, key) pair always yields the same uid, which keeps output
// files byte-identical across runs.
func makeUID(seed int64, key string) string {
	h := fnv.New64a()
	h.Write([]byte(key))
	r := rand.New(rand.NewSource(seed ^ int64(h.Sum64())))

	b := make([]byte, 12)
	for i := range b {
		b[i] = uidChars[r.Intn(len(uidChars))]
	}
	return "uid://" + string(b)
}
