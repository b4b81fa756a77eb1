package checkout

// SlotGroup is a labeled band of half-hour delivery windows.
type SlotGroup struct {
	Group string   `json:"group"`
	Slots []string `json:"slots"`
}

var slotGroups = []SlotGroup{
	{
		Group: "Morning (6 AM - 9 AM)",
		Slots: []string{
			"6:00 – 6:30 AM",
			"6:30 – 7:00 AM",
			"7:00 – 7:30 AM",
			"7:30 – 8:00 AM",
			"8:00 – 8:30 AM",
			"8:30 – 9:00 AM",
		},
	},
	{
		Group: "Evening (4 PM - 9 PM)",
		Slots: []string{
			"4:00 – 4:30 PM",
			"4:30 – 5:00 PM",
			"5:00 – 5:30 PM",
			"5:30 – 6:00 PM",
			"6:00 – 6:30 PM",
			"6:30 – 7:00 PM",
			"7:00 – 7:30 PM",
			"7:30 – 8:00 PM",
			"8:00 – 8:30 PM",
			"8:30 – 9:00 PM",
		},
	},
}

// SlotGroups returns the fixed delivery windows in display order.
func SlotGroups() []SlotGroup {
	out := make([]SlotGroup, len(slotGroups))
	copy(out, slotGroups)
	return out
}

// ValidSlot reports whether the string is one of the fixed windows. No
// free-text times are accepted.
func ValidSlot(slot string) bool {
	for _, group := range slotGroups {
		for _, candidate := range group.Slots {
			if candidate == slot {
				return true
			}
		}
	}
	return false
}
