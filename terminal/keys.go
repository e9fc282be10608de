package terminal

// MaxEscapeSeqLen bounds the bytes read after ESC when decoding a key
// "[A" through "[D" use two, "[5~" and "[6~" use three
const MaxEscapeSeqLen = 3

// escapeSequence maps escape sequences to keys
// Key: sequence after ESC (e.g., "[A" for up arrow)
type escapeSequence struct {
	seq string
	key Key
}

// Known escape sequences
var csiSequences = []escapeSequence{
	// Arrow keys
	{"[A", KeyUp},
	{"[B", KeyDown},
	{"[C", KeyRight},
	{"[D", KeyLeft},

	// Paging
	{"[5~", KeyPageUp},
	{"[6~", KeyPageDown},
}

var csiMap = buildSequenceMap(csiSequences)

func buildSequenceMap(seqs []escapeSequence) map[string]Key {
	m := make(map[string]Key, len(seqs))
	for _, s := range seqs {
		if len(s.seq) > MaxEscapeSeqLen {
			panic("escape sequence exceeds MaxEscapeSeqLen: " + s.seq)
		}
		m[s.seq] = s.key
	}
	return m
}

// lookupCSI performs zero-alloc map lookup via compiler optimization
// The string([]byte) conversion inline in map access does not allocate
func lookupCSI(seq []byte) (Key, bool) {
	k, ok := csiMap[string(seq)]
	return k, ok
}
