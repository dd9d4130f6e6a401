package game

import (
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"
	"time"

	"lukechampine.com/frand"
)

var gameIDCounter uint32

// newGameID returns a 12-byte hex id: a big-endian timestamp, five random
// bytes and a three-byte counter, so ids sort by creation time.
func newGameID() string {
	b := make([]byte, 12)
	binary.BigEndian.PutUint32(b, uint32(time.Now().Unix()))
	frand.Read(b[4:9])
	i := atomic.AddUint32(&gameIDCounter, 1)
	b[9] = byte(i >> 16)
	b[10] = byte(i >> 8)
	b[11] = byte(i)
	return hex.EncodeToString(b)
}
