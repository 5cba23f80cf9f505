// Package ipam decides which IP addresses in the inventory may be handed to
// a new client. The .1 address of any subnet is the gateway and never
// assignable; switch-managed subnets additionally reserve .2 through .20 for
// infrastructure.
package ipam

import (
	"sort"
	"strconv"
	"strings"
)

const switchReservedMax = 20

// Record is one inventory IP with its owning device, if any.
type Record struct {
	ID         int64
	Address    string
	DeviceID   *int64
	DeviceType string
}

// Resolve returns the records eligible for assignment, sorted ascending by
// numeric dotted-quad value, plus any records whose stored address failed to
// parse. Malformed addresses should have been rejected at write time; the
// caller is expected to log them and move on rather than fail the listing.
//
// assigned holds the ids of records already referenced by a client. When
// targetDeviceID is non-nil, only records bound to that device or to no
// device are considered.
//
// Pure function of its inputs; safe for concurrent use.
func Resolve(records []Record, assigned map[int64]bool, targetDeviceID *int64) (available, malformed []Record) {
	type candidate struct {
		rec Record
		key uint32
	}

	candidates := []candidate{}

	for _, rec := range records {
		key, octets, ok := parseDottedQuad(rec.Address)
		if !ok {
			malformed = append(malformed, rec)
			continue
		}

		if assigned[rec.ID] {
			continue
		}

		if targetDeviceID != nil && rec.DeviceID != nil && *rec.DeviceID != *targetDeviceID {
			continue
		}

		last := octets[3]
		if rec.DeviceID != nil && rec.DeviceType == "switch" {
			if last <= switchReservedMax {
				continue
			}
		} else if last == 1 {
			continue
		}

		candidates = append(candidates, candidate{rec: rec, key: key})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].key < candidates[j].key
	})

	available = make([]Record, len(candidates))
	for i, c := range candidates {
		available[i] = c.rec
	}

	return available, malformed
}

func parseDottedQuad(addr string) (uint32, [4]int, bool) {
	var octets [4]int

	parts := strings.Split(addr, ".")
	if len(parts) != 4 {
		return 0, octets, false
	}

	var key uint32
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return 0, octets, false
		}
		octets[i] = n
		key = key<<8 | uint32(n)
	}

	return key, octets, true
}
