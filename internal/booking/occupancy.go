package booking

import "sort"

// OccupiedSet is the derived index of committed slot keys. It is always
// recomputed from the store's current contents, never cached across a
// mutation.
type OccupiedSet map[string]struct{}

// Key returns the injective slot-key encoding used by the occupancy
// index and the schedule projection.
func Key(date, timeID string, computerID ComputerID) string {
	return date + "|" + timeID + "|" + string(computerID)
}

// Key returns the slot's occupancy key.
func (s BookedSlot) Key() string {
	return Key(s.Date, s.TimeID, s.ComputerID)
}

// ComputeOccupied builds the occupancy index over every slot of every
// committed booking. O(total slots).
func ComputeOccupied(all []StudentBooking) OccupiedSet {
	occupied := make(OccupiedSet)
	for _, student := range all {
		for _, slot := range student.Slots {
			occupied[slot.Key()] = struct{}{}
		}
	}
	return occupied
}

// Occupied reports whether the key is claimed by a committed booking.
func (o OccupiedSet) Occupied(key string) bool {
	_, ok := o[key]
	return ok
}

// Keys returns the occupied slot keys in stable order.
func (o OccupiedSet) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
