package mp3

import "github.com/simonhull/audesc/internal/binary"

const (
	syncByte = 0xFF
	syncMask = 0xE0
)

// findSync returns the offset of the first frame sync at or after start:
// a 0xFF byte whose successor has its top three bits set. It returns -1
// when the buffer holds no sync.
//
// A rejected 0xFF resumes the search at the byte right after it.
func findSync(h *binary.Header, start int) int {
	for i := start; ; {
		p := h.IndexByte(syncByte, i)
		if p < 0 || p+1 >= h.Len() {
			return -1
		}
		if h.At(p+1)&syncMask == syncMask {
			return p
		}
		i = p + 1
	}
}
