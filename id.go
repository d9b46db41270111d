package secondbrain

import (
	"fmt"
	"sync/atomic"
	"time"
)

var idSeq atomic.Int64

// newID mints an opaque record identifier, unique for the process lifetime.
// The leading millisecond clock keeps ids creation-ordered, which consumers
// rely on as a cheap sort key; the sequence suffix disambiguates ids minted
// within the same millisecond. Creation time itself is carried by each
// record's explicit CreatedAt field, never parsed back out of the id.
func newID(now time.Time) string {
	return fmt.Sprintf("%d%04d", now.UnixMilli(), idSeq.Add(1)%10000)
}
